// Package decorum attaches a fixed set of attribute policies to record
// types: required fields, enumeration visibility, deprecated methods and
// frozen type definitions.
//
// A type is declared once, before any record of it exists, either member by
// member with Define or from an annotated struct with DefineStruct. Records
// are then created with Type.New and read, written and serialized through
// the Record API, which enforces the policies.
//
// The policies are deliberately closed: Require, Enumerable, Deprecate and
// freezing are the only ones, and they apply in the order they are listed.
package decorum
