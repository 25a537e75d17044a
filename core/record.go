package core

import (
	"sort"

	"github.com/chriso345/decorum/errors"
)

// Record is an instance of a Type. Its per-instance values stay writable
// after the type is frozen; required fields still reject empty values.
type Record struct {
	typ      *Type
	values   map[string]any
	required map[string]*Required[any]
}

// New creates a record of type t. Field defaults are applied first, then
// values are written in declaration order through the same path as Set, so
// accessors and required checks behave as they do afterwards. Construction
// fails if a required field ends up unset.
func (t *Type) New(values map[string]any) (*Record, error) {
	// Unknown names are reported in sorted order so the error is stable.
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if t.member(name) == nil {
			return nil, t.unknown(name)
		}
	}

	r := &Record{
		typ:      t,
		values:   map[string]any{},
		required: map[string]*Required[any]{},
	}
	for _, m := range t.members {
		if m.Kind != KindField {
			continue
		}
		if m.Required {
			slot := NewRequired[any](m.Name)
			if !IsEmpty(m.Default) {
				_ = slot.Set(m.Default)
			}
			r.required[m.Name] = slot
			continue
		}
		r.values[m.Name] = m.Default
	}

	for _, m := range t.members {
		v, ok := values[m.Name]
		if !ok {
			continue
		}
		if err := r.Set(m.Name, v); err != nil {
			return nil, err
		}
	}

	for _, m := range t.members {
		if m.Required && !r.slot(m.Name).IsSet() {
			return nil, errors.NewValidation(m.Name)
		}
	}
	return r, nil
}

// Type returns the record's type.
func (r *Record) Type() *Type { return r.typ }

// Get reads a field or accessor by name.
func (r *Record) Get(name string) (any, error) {
	m := r.typ.member(name)
	if m == nil {
		return nil, r.typ.unknown(name)
	}
	switch m.Kind {
	case KindField:
		if m.Required {
			return r.slot(name).Get(), nil
		}
		if v, ok := r.values[name]; ok {
			return v, nil
		}
		return m.Default, nil
	case KindAccessor:
		return m.get(r)
	}
	return nil, errors.NewMemberKind(name, "field", m.Kind.String())
}

// GetString is Get for string attributes. Non-string values read as "".
func (r *Record) GetString(name string) (string, error) {
	v, err := r.Get(name)
	if err != nil {
		return "", err
	}
	s, _ := v.(string)
	return s, nil
}

// Set writes a field or accessor by name. A rejected write leaves the
// previous value in place.
func (r *Record) Set(name string, v any) error {
	m := r.typ.member(name)
	if m == nil {
		return r.typ.unknown(name)
	}
	switch m.Kind {
	case KindField:
		if m.Required {
			return r.slot(name).Set(v)
		}
		r.values[name] = v
		return nil
	case KindAccessor:
		if m.set == nil {
			return errors.NewReadOnly(name)
		}
		return m.set(r, v)
	}
	return errors.NewMemberKind(name, "field", m.Kind.String())
}

// Call invokes a method by name with r as the receiver.
func (r *Record) Call(name string, args ...any) (any, error) {
	m := r.typ.member(name)
	if m == nil {
		return nil, r.typ.unknown(name)
	}
	if m.Kind != KindMethod {
		return nil, errors.NewMemberKind(name, "method", m.Kind.String())
	}
	return m.call(r, args...)
}

// slot returns the storage of a required field, creating it for fields the
// type gained or reconfigured after the record was built.
func (r *Record) slot(name string) *Required[any] {
	s, ok := r.required[name]
	if !ok {
		s = NewRequired[any](name)
		if v, ok := r.values[name]; ok && !IsEmpty(v) {
			_ = s.Set(v)
		}
		r.required[name] = s
	}
	return s
}
