package errors

import "fmt"

// ValidationError is returned when a required attribute is given an empty value.
// The attribute keeps its previous value.
type ValidationError struct{ Field string }

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s is required.", e.Field)
}

// FrozenTypeError indicates an attempt to change the shared definition of a
// type after it has been frozen.
type FrozenTypeError struct{ Type, Member, Op string }

func (e FrozenTypeError) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("cannot %s on frozen type %s", e.Op, e.Type)
	}
	return fmt.Sprintf("cannot %s %q on frozen type %s", e.Op, e.Member, e.Type)
}

// UnknownMemberError indicates a lookup of a member the type does not declare.
// Suggestion, if present, is a close match the caller may have intended.
type UnknownMemberError struct{ Type, Name, Suggestion string }

func (e UnknownMemberError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s has no member %s (did you mean %q?)", e.Type, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s has no member %s", e.Type, e.Name)
}

// DuplicateMemberError indicates a member name was declared twice on one type.
type DuplicateMemberError struct{ Type, Name string }

func (e DuplicateMemberError) Error() string {
	return fmt.Sprintf("%s already declares member %s", e.Type, e.Name)
}

// ReadOnlyError indicates a write to an accessor that has no setter.
type ReadOnlyError struct{ Member string }

func (e ReadOnlyError) Error() string {
	return fmt.Sprintf("%s is read-only", e.Member)
}

// MemberKindError indicates an operation that does not fit the member's kind,
// such as calling a field or assigning to a method.
type MemberKindError struct{ Member, Want, Got string }

func (e MemberKindError) Error() string {
	return fmt.Sprintf("%s is a %s, not a %s", e.Member, e.Got, e.Want)
}

// PolicyError indicates a policy applied to a member kind it cannot decorate.
type PolicyError struct{ Policy, Member, Kind string }

func (e PolicyError) Error() string {
	return fmt.Sprintf("policy %s cannot be applied to %s %s", e.Policy, e.Kind, e.Member)
}

// DefinitionError represents a malformed type definition, typically from an
// annotated struct passed to DefineStruct.
type DefinitionError struct{ Msg string }

func (e DefinitionError) Error() string { return e.Msg }

// Helper constructors
func NewValidation(field string) error { return ValidationError{Field: field} }
func NewFrozenType(typ, member, op string) error {
	return FrozenTypeError{Type: typ, Member: member, Op: op}
}
func NewUnknownMember(typ, name, suggestion string) error {
	return UnknownMemberError{Type: typ, Name: name, Suggestion: suggestion}
}
func NewDuplicateMember(typ, name string) error { return DuplicateMemberError{Type: typ, Name: name} }
func NewReadOnly(member string) error           { return ReadOnlyError{Member: member} }
func NewMemberKind(member, want, got string) error {
	return MemberKindError{Member: member, Want: want, Got: got}
}
func NewPolicy(policy, member, kind string) error {
	return PolicyError{Policy: policy, Member: member, Kind: kind}
}
func NewDefinition(msg string) error { return DefinitionError{Msg: msg} }
