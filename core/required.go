package core

import (
	"reflect"

	"github.com/chriso345/decorum/errors"
)

// Required holds the value of a required attribute. Writes of an empty value
// are rejected with a ValidationError and leave the previous value in place.
//
// The zero Required is usable but reports errors without a field name; use
// NewRequired to name it.
type Required[T any] struct {
	name  string
	value T
	set   bool
}

// NewRequired returns an unset required attribute called name.
func NewRequired[T any](name string) *Required[T] {
	return &Required[T]{name: name}
}

// Name returns the attribute name used in validation errors.
func (r *Required[T]) Name() string { return r.name }

// Get returns the last successfully stored value.
func (r *Required[T]) Get() T { return r.value }

// IsSet reports whether a value was ever stored.
func (r *Required[T]) IsSet() bool { return r.set }

// Set stores v unless it is empty.
func (r *Required[T]) Set(v T) error {
	if IsEmpty(v) {
		return errors.NewValidation(r.name)
	}
	r.value = v
	r.set = true
	return nil
}

// IsEmpty reports whether v counts as absent for a required attribute: nil,
// the empty string, or a nil pointer, map, slice, interface, func or chan.
// Numeric zero and false are values, not absence.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
