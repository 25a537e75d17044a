package decorum

import "github.com/chriso345/decorum/core"

// Define starts the definition of a record type called name.
//
// Members are declared in order on the returned builder; policies listed
// for a member are applied in that order. Build returns the finished type or
// the first definition error.
//
// Usage:
//
//	userType, err := decorum.Define("User").
//		Field("username", "", decorum.Require()).
//		Field("country", "").
//		Static("userType", "Generic").
//		Accessor("userType", func(r *decorum.Record) (any, error) {
//			v, _ := r.Type().Static("userType")
//			return v, nil
//		}, nil, decorum.Enumerable(false)).
//		Frozen().
//		Build()
var Define = core.Define

// DefineStruct starts a type definition from an annotated struct.
//
// Each named field becomes a data field; `attr`, `required`, `enumerable`
// and `default` tags configure it. An embedded Decorum carries the type name
// in its `name` tag, and an embedded Frozen freezes the type at Build.
//
// Usage:
//
//	b := decorum.DefineStruct(struct {
//		decorum.Decorum `name:"User"`
//		decorum.Frozen
//
//		Username string `required:"true"`
//		Email    string `attr:"_email" required:"true" enumerable:"false"`
//		Country  string
//	}{})
//	userType, err := b.Build()
var DefineStruct = core.DefineStruct

// Require guards a field so it can never be set to an empty value. A rejected
// write returns a ValidationError naming the field and keeps the old value.
var Require = core.Require

// Enumerable fixes whether a field or accessor appears when a record is
// listed or serialized. Direct access by name is unaffected.
var Enumerable = core.Enumerable

// Deprecate makes each call of a method emit
// "Warning: <name>() is deprecated. Use other methods instead." exactly once,
// before the method runs. The method's result is returned unchanged.
var Deprecate = core.Deprecate

// WithNotifier routes a type's policy diagnostics to n instead of the
// default notifier, which writes to standard output.
var WithNotifier = core.WithNotifier

// IsEmpty reports whether a value counts as absent for a required field:
// nil, the empty string, or a nil pointer, map, slice, interface, func or
// chan. Zero numbers and false are not empty.
var IsEmpty = core.IsEmpty

// NewRequired returns an unset required attribute called name. It is the
// standalone form of the Require policy for plain Go structs.
//
// Usage:
//
//	name := decorum.NewRequired[string]("username")
//	if err := name.Set(""); err != nil {
//		// errors.ValidationError{Field: "username"}
//	}
func NewRequired[T any](name string) *Required[T] {
	return core.NewRequired[T](name)
}

// DeprecateFunc wraps any function so each call first emits the deprecation
// warning for key through n (the default notifier when nil). Arguments and
// results pass through unchanged.
func DeprecateFunc[F any](key string, fn F, n Notifier) F {
	return core.DeprecateFunc(key, fn, n)
}
