package core

import (
	"sort"

	"github.com/chriso345/decorum/errors"
	"github.com/chriso345/decorum/internal/common"
)

// Kind tells fields, accessors and methods apart.
type Kind int

const (
	KindField Kind = iota
	KindAccessor
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindAccessor:
		return "accessor"
	case KindMethod:
		return "method"
	}
	return "unknown"
}

// Getter computes the value of an accessor for a record.
type Getter func(r *Record) (any, error)

// Setter stores the value of an accessor on a record.
type Setter func(r *Record, v any) error

// MethodFunc is the body of a method. r is the receiving record.
type MethodFunc func(r *Record, args ...any) (any, error)

// Member describes one attribute of a type: its kind, the flags its
// policies installed, and for fields the default value.
type Member struct {
	Name       string
	Kind       Kind
	Enumerable bool
	Required   bool
	Deprecated bool
	Default    any

	get  Getter
	set  Setter
	call MethodFunc
}

// HasGetterSetter reports whether the member is an accessor with both halves.
func (m Member) HasGetterSetter() bool {
	return m.Kind == KindAccessor && m.get != nil && m.set != nil
}

// Policies lists the policies in effect on the member, in a fixed order.
func (m Member) Policies() []Policy {
	var out []Policy
	if m.Required {
		out = append(out, Require())
	}
	if m.Kind != KindMethod && !m.Enumerable {
		out = append(out, Enumerable(false))
	}
	if m.Deprecated {
		out = append(out, Deprecate())
	}
	return out
}

// Type is the shared definition of a record type. Members keep their
// declaration order. Once frozen, the definition cannot change; records of
// the type can still be written.
//
// A Type is not safe for concurrent definition. A frozen Type is safe for
// concurrent reads.
type Type struct {
	name     string
	notifier Notifier
	members  []*Member
	index    map[string]int
	statics  map[string]any
	frozen   bool
}

// Option configures a Type at definition time.
type Option func(*Type)

// WithNotifier routes the type's policy diagnostics to n.
func WithNotifier(n Notifier) Option {
	return func(t *Type) {
		if n != nil {
			t.notifier = n
		}
	}
}

func newType(name string, opts ...Option) *Type {
	t := &Type{
		name:     name,
		notifier: DefaultNotifier(),
		index:    map[string]int{},
		statics:  map[string]any{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// IsFrozen reports whether Freeze has been applied.
func (t *Type) IsFrozen() bool { return t.frozen }

// Freeze closes the shared definition: members and statics can no longer be
// added, removed or reconfigured. Freezing twice is harmless.
func (t *Type) Freeze() *Type {
	t.frozen = true
	return t
}

// Members returns copies of all members in declaration order.
func (t *Type) Members() []Member {
	out := make([]Member, len(t.members))
	for i, m := range t.members {
		out[i] = *m
	}
	return out
}

// Lookup returns a copy of the named member.
func (t *Type) Lookup(name string) (Member, bool) {
	m := t.member(name)
	if m == nil {
		return Member{}, false
	}
	return *m, true
}

// Static returns a class-level value shared by all records of the type.
func (t *Type) Static(name string) (any, bool) {
	v, ok := t.statics[name]
	return v, ok
}

// StaticNames returns the names of all class-level values, sorted.
func (t *Type) StaticNames() []string {
	names := make([]string, 0, len(t.statics))
	for name := range t.statics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetStatic sets a class-level value.
func (t *Type) SetStatic(name string, v any) error {
	if t.frozen {
		return errors.NewFrozenType(t.name, name, "set static")
	}
	t.statics[name] = v
	return nil
}

// DefineField adds a data field with a default value.
func (t *Type) DefineField(name string, def any, policies ...Policy) error {
	return t.define(&Member{Name: name, Kind: KindField, Enumerable: true, Default: def}, policies)
}

// DefineAccessor adds a computed attribute. set may be nil for a read-only accessor.
func (t *Type) DefineAccessor(name string, get Getter, set Setter, policies ...Policy) error {
	if get == nil {
		return errors.NewDefinition("accessor " + name + " needs a getter")
	}
	return t.define(&Member{Name: name, Kind: KindAccessor, Enumerable: true, get: get, set: set}, policies)
}

// DefineMethod adds a method.
func (t *Type) DefineMethod(name string, fn MethodFunc, policies ...Policy) error {
	if fn == nil {
		return errors.NewDefinition("method " + name + " needs a body")
	}
	return t.define(&Member{Name: name, Kind: KindMethod, call: fn}, policies)
}

func (t *Type) define(m *Member, policies []Policy) error {
	if t.frozen {
		return errors.NewFrozenType(t.name, m.Name, "define")
	}
	if m.Name == "" {
		return errors.NewDefinition("member of " + t.name + " needs a name")
	}
	if _, ok := t.index[m.Name]; ok {
		return errors.NewDuplicateMember(t.name, m.Name)
	}
	for _, p := range policies {
		if err := p.apply(m, t.notifier); err != nil {
			return err
		}
	}
	t.index[m.Name] = len(t.members)
	t.members = append(t.members, m)
	return nil
}

// Remove deletes a member from the definition.
func (t *Type) Remove(name string) error {
	if t.frozen {
		return errors.NewFrozenType(t.name, name, "remove")
	}
	i, ok := t.index[name]
	if !ok {
		return t.unknown(name)
	}
	t.members = append(t.members[:i], t.members[i+1:]...)
	delete(t.index, name)
	for j := i; j < len(t.members); j++ {
		t.index[t.members[j].Name] = j
	}
	return nil
}

// Configure applies further policies to an existing member.
func (t *Type) Configure(name string, policies ...Policy) error {
	if t.frozen {
		return errors.NewFrozenType(t.name, name, "configure")
	}
	m := t.member(name)
	if m == nil {
		return t.unknown(name)
	}
	// Work on a copy so a failing policy leaves the member untouched.
	next := *m
	for _, p := range policies {
		if err := p.apply(&next, t.notifier); err != nil {
			return err
		}
	}
	*m = next
	return nil
}

func (t *Type) member(name string) *Member {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.members[i]
}

func (t *Type) unknown(name string) error {
	names := make([]string, len(t.members))
	for i, m := range t.members {
		names[i] = m.Name
	}
	return errors.NewUnknownMember(t.name, name, common.ClosestMatch(name, names))
}

// TypeBuilder declares a type member by member. The first error stops the
// chain and is reported by Build.
type TypeBuilder struct {
	t      *Type
	freeze bool
	err    error
}

// Define starts the definition of a type called name.
func Define(name string, opts ...Option) *TypeBuilder {
	b := &TypeBuilder{t: newType(name, opts...)}
	if name == "" {
		b.err = errors.NewDefinition("type needs a name")
	}
	return b
}

// Field declares a data field.
func (b *TypeBuilder) Field(name string, def any, policies ...Policy) *TypeBuilder {
	if b.err == nil {
		b.err = b.t.DefineField(name, def, policies...)
	}
	return b
}

// Accessor declares a computed attribute; set may be nil.
func (b *TypeBuilder) Accessor(name string, get Getter, set Setter, policies ...Policy) *TypeBuilder {
	if b.err == nil {
		b.err = b.t.DefineAccessor(name, get, set, policies...)
	}
	return b
}

// Method declares a method.
func (b *TypeBuilder) Method(name string, fn MethodFunc, policies ...Policy) *TypeBuilder {
	if b.err == nil {
		b.err = b.t.DefineMethod(name, fn, policies...)
	}
	return b
}

// Static declares a class-level value.
func (b *TypeBuilder) Static(name string, v any) *TypeBuilder {
	if b.err == nil {
		b.err = b.t.SetStatic(name, v)
	}
	return b
}

// Frozen freezes the type once every member is declared, at Build time.
func (b *TypeBuilder) Frozen() *TypeBuilder {
	b.freeze = true
	return b
}

// Build returns the defined type or the first definition error.
func (b *TypeBuilder) Build() (*Type, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.freeze {
		b.t.Freeze()
	}
	return b.t, nil
}

// MustBuild is like Build but panics on error. It is meant for package-level
// type definitions.
func (b *TypeBuilder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
