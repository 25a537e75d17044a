package core

import (
	stderrs "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	decerr "github.com/chriso345/decorum/errors"
)

type profile struct {
	Decorum `name:"Profile"`
	Frozen

	email   string `attr:"_email" required:"true" enumerable:"false"`
	Handle  string `required:"true"`
	Country string `default:"TR"`
	Age     int
	Skip    string `attr:"-"`
}

func TestDefineStruct_ReadsTags(t *testing.T) {
	typ, err := DefineStruct(profile{Age: 30}).Build()
	require.NoError(t, err)

	assert.Equal(t, "Profile", typ.Name())
	assert.True(t, typ.IsFrozen())

	var names []string
	for _, m := range typ.Members() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"_email", "handle", "country", "age"}, names)

	email, _ := typ.Lookup("_email")
	assert.True(t, email.Required)
	assert.False(t, email.Enumerable)
	handle, _ := typ.Lookup("handle")
	assert.True(t, handle.Required)
	country, _ := typ.Lookup("country")
	assert.Equal(t, "TR", country.Default)
	age, _ := typ.Lookup("age")
	assert.Equal(t, 30, age.Default)
}

func TestDefineStruct_PointerAndTypeName(t *testing.T) {
	type Plain struct {
		Name string
	}
	typ, err := DefineStruct(&Plain{Name: "x"}).Build()
	require.NoError(t, err)
	assert.Equal(t, "Plain", typ.Name())
	assert.False(t, typ.IsFrozen())
	m, _ := typ.Lookup("name")
	assert.Equal(t, "x", m.Default)
}

func TestDefineStruct_AcceptsMoreMembers(t *testing.T) {
	typ, err := DefineStruct(profile{}).
		Accessor("email", func(r *Record) (any, error) { return r.Get("_email") }, nil).
		Build()
	require.NoError(t, err)
	r, err := typ.New(map[string]any{"_email": "a@b", "handle": "h"})
	require.NoError(t, err)
	v, _ := r.Get("email")
	assert.Equal(t, "a@b", v)
}

func TestDefineStruct_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		proto any
	}{
		{"not a struct", 42},
		{"anonymous without name", struct{ A string }{}},
		{"bad required tag", struct {
			Decorum `name:"X"`
			A       string `required:"yes"`
		}{}},
		{"default on non-string", struct {
			Decorum `name:"X"`
			A       int `default:"1"`
		}{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DefineStruct(tc.proto).Build()
			var de decerr.DefinitionError
			assert.True(t, stderrs.As(err, &de), "got %v", err)
		})
	}
}
