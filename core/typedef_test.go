package core

import (
	stderrs "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	decerr "github.com/chriso345/decorum/errors"
)

func noop(r *Record, _ ...any) (any, error) { return nil, nil }

func constant(v any) Getter {
	return func(*Record) (any, error) { return v, nil }
}

func TestDefine_KeepsDeclarationOrder(t *testing.T) {
	typ, err := Define("Point").
		Field("x", 0).
		Field("y", 0).
		Accessor("sum", constant(0), nil).
		Method("reset", noop).
		Build()
	require.NoError(t, err)

	var names []string
	for _, m := range typ.Members() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"x", "y", "sum", "reset"}, names)
	assert.False(t, typ.IsFrozen())
}

func TestDefine_DuplicateMember(t *testing.T) {
	_, err := Define("T").Field("a", "").Field("a", "").Build()
	var de decerr.DuplicateMemberError
	require.True(t, stderrs.As(err, &de))
	assert.Equal(t, "a", de.Name)
}

func TestDefine_MissingName(t *testing.T) {
	_, err := Define("").Build()
	var de decerr.DefinitionError
	assert.True(t, stderrs.As(err, &de))
}

func TestPolicy_WrongMemberKind(t *testing.T) {
	cases := []struct {
		name  string
		build *TypeBuilder
		kind  string
	}{
		{"required accessor", Define("T").Accessor("a", constant(1), nil, Require()), "accessor"},
		{"required method", Define("T").Method("m", noop, Require()), "method"},
		{"enumerable method", Define("T").Method("m", noop, Enumerable(true)), "method"},
		{"deprecated field", Define("T").Field("f", "", Deprecate()), "field"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build.Build()
			var pe decerr.PolicyError
			require.True(t, stderrs.As(err, &pe))
			assert.Equal(t, tc.kind, pe.Kind)
		})
	}
}

func TestEnumerable_SetsFlagAndNotifies(t *testing.T) {
	n, logs := observed()
	typ, err := Define("T", WithNotifier(n)).
		Accessor("hidden", constant(1), nil, Enumerable(false)).
		Accessor("shown", constant(2), nil, Enumerable(true)).
		Build()
	require.NoError(t, err)

	hidden, _ := typ.Lookup("hidden")
	shown, _ := typ.Lookup("shown")
	assert.False(t, hidden.Enumerable)
	assert.True(t, shown.Enumerable)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	assert.Equal(t, "The enumerable property of this member is set to: false", logs.All()[0].Message)
	assert.Equal(t, "The enumerable property of this member is set to: true", logs.All()[1].Message)
}

func TestFreeze_RejectsDefinitionChanges(t *testing.T) {
	typ, err := Define("User").
		Field("username", "", Require()).
		Static("userType", "Generic").
		Method("address", noop).
		Frozen().
		Build()
	require.NoError(t, err)
	require.True(t, typ.IsFrozen())

	ops := map[string]func() error{
		"define field":    func() error { return typ.DefineField("age", 0) },
		"define accessor": func() error { return typ.DefineAccessor("a", constant(1), nil) },
		"define method":   func() error { return typ.DefineMethod("m", noop) },
		"remove":          func() error { return typ.Remove("username") },
		"configure":       func() error { return typ.Configure("username", Enumerable(false)) },
		"set static":      func() error { return typ.SetStatic("userType", "Admin") },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			var fe decerr.FrozenTypeError
			require.True(t, stderrs.As(err, &fe), "got %v", err)
			assert.Equal(t, "User", fe.Type)
		})
	}

	// Reads keep working and nothing changed.
	m, ok := typ.Lookup("username")
	require.True(t, ok)
	assert.True(t, m.Required)
	assert.True(t, m.Enumerable)
	_, ok = typ.Lookup("age")
	assert.False(t, ok)
	v, ok := typ.Static("userType")
	assert.True(t, ok)
	assert.Equal(t, "Generic", v)
	assert.Len(t, typ.Members(), 2)
}

func TestFreeze_InstanceWritesStillAllowed(t *testing.T) {
	typ := Define("User").
		Field("username", "", Require()).
		Field("country", "").
		Frozen().
		MustBuild()

	r, err := typ.New(map[string]any{"username": "uut"})
	require.NoError(t, err)
	require.NoError(t, r.Set("username", "other"))
	require.NoError(t, r.Set("country", "TR"))

	got, _ := r.Get("username")
	assert.Equal(t, "other", got)
	assert.Error(t, r.Set("username", ""))
	got, _ = r.Get("username")
	assert.Equal(t, "other", got)
}

func TestRemoveAndConfigure_BeforeFreeze(t *testing.T) {
	typ := Define("T").Field("a", "").Field("b", "").Field("c", "").MustBuild()

	require.NoError(t, typ.Remove("b"))
	_, ok := typ.Lookup("b")
	assert.False(t, ok)
	c, ok := typ.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, "c", c.Name)

	require.NoError(t, typ.Configure("c", Require(), Enumerable(false)))
	c, _ = typ.Lookup("c")
	assert.True(t, c.Required)
	assert.False(t, c.Enumerable)
}

func TestConfigure_FailingPolicyLeavesMemberUntouched(t *testing.T) {
	typ := Define("T").Field("a", "").MustBuild()
	err := typ.Configure("a", Enumerable(false), Deprecate())
	require.Error(t, err)
	a, _ := typ.Lookup("a")
	assert.True(t, a.Enumerable)
}

func TestUnknownMember_Suggestion(t *testing.T) {
	typ := Define("User").Field("username", "").Field("country", "").MustBuild()
	err := typ.Remove("usrname")
	var ue decerr.UnknownMemberError
	require.True(t, stderrs.As(err, &ue))
	assert.Equal(t, "username", ue.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "username"?`)
}

func TestMember_Policies(t *testing.T) {
	typ := Define("T").
		Field("a", "", Require(), Enumerable(false)).
		Accessor("b", constant(1), func(*Record, any) error { return nil }).
		Method("c", noop, Deprecate()).
		MustBuild()

	a, _ := typ.Lookup("a")
	assert.Equal(t, []Policy{Require(), Enumerable(false)}, a.Policies())
	b, _ := typ.Lookup("b")
	assert.True(t, b.HasGetterSetter())
	assert.Empty(t, b.Policies())
	c, _ := typ.Lookup("c")
	assert.Equal(t, "deprecated", c.Policies()[0].String())
}
