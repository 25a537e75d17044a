package display_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriso345/decorum/core"
	"github.com/chriso345/decorum/display"
	"github.com/chriso345/decorum/user"
)

func TestDescribe_UserGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "describe_user", []byte(display.Describe(user.Type(), false)))
}

func TestDescribe_Color(t *testing.T) {
	out := display.Describe(user.Type(), true)
	assert.Contains(t, out, "\x1b[1m\x1b[4mFields:\x1b[0m")
	assert.Contains(t, out, "\x1b[1mUser\x1b[0m (frozen)")
}

func TestDescribe_EmptyType(t *testing.T) {
	typ, err := core.Define("Empty").Build()
	require.NoError(t, err)

	out := display.Describe(typ, false)
	assert.Equal(t, "Type: Empty\n", out)
	assert.NotContains(t, out, "Fields:")
	assert.NotContains(t, out, "Statics:")
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "decorum v1.2.3", display.Version("decorum", "1.2.3"))
	assert.Equal(t, "decorum v1.2.3", display.Version("decorum", "v1.2.3"))
	assert.Equal(t, "v0.1.0", display.Version("", "0.1.0"))
}
