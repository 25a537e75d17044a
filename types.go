package decorum

import "github.com/chriso345/decorum/core"

// Decorum is a marker embedded in structs passed to DefineStruct. Its `name`
// tag names the type.
//
// Usage:
//
//	shape := struct {
//	    Decorum `name:"User"`
//	    ...
//	}{}
type Decorum = core.Decorum

// Frozen is a marker embedded in structs passed to DefineStruct. The type is
// frozen once it is built: no member or static can be added, removed or
// reconfigured afterwards, while records keep accepting writes.
//
// Usage:
//
//	shape := struct {
//	    Decorum `name:"User"`
//	    Frozen
//	    ...
//	}{}
type Frozen = core.Frozen

// Required holds a single required value with Get and Set. See NewRequired.
type Required[T any] = core.Required[T]

// Type is the shared definition of a record type.
type Type = core.Type

// TypeBuilder declares a type member by member.
type TypeBuilder = core.TypeBuilder

// Record is an instance of a Type.
type Record = core.Record

// Member describes one field, accessor or method of a Type.
type Member = core.Member

// Policy is one of Require, Enumerable or Deprecate.
type Policy = core.Policy

// Getter, Setter and MethodFunc are the bodies of accessors and methods.
type (
	Getter     = core.Getter
	Setter     = core.Setter
	MethodFunc = core.MethodFunc
)

// Notifier receives policy diagnostics; LogNotifier sends them to zap.
type (
	Notifier     = core.Notifier
	NotifierFunc = core.NotifierFunc
	LogNotifier  = core.LogNotifier
)
