// Package user defines the example User record type, which applies all four
// attribute policies, and a typed facade over its records.
package user

import (
	"fmt"

	"github.com/chriso345/decorum/core"
)

// DefaultUserType is the class-level value exposed by the userType accessor.
const DefaultUserType = "Generic"

type shape struct {
	core.Decorum `name:"User"`
	core.Frozen

	Email        string `attr:"_email" required:"true" enumerable:"false"`
	Username     string `required:"true"`
	AddressLine1 string
	AddressLine2 string
	Country      string
}

// Define builds the User type. Diagnostics go to the default notifier
// unless opts say otherwise.
func Define(opts ...core.Option) (*core.Type, error) {
	return core.DefineStruct(shape{}, opts...).
		Static("userType", DefaultUserType).
		Accessor("userType", userTypeOf, nil, core.Enumerable(false)).
		Accessor("email", emailOf, setEmail).
		Method("address", address, core.Deprecate()).
		Build()
}

func userTypeOf(r *core.Record) (any, error) {
	v, _ := r.Type().Static("userType")
	return v, nil
}

func emailOf(r *core.Record) (any, error) {
	return r.Get("_email")
}

func setEmail(r *core.Record, v any) error {
	return r.Set("_email", v)
}

func address(r *core.Record, _ ...any) (any, error) {
	var lines [3]string
	for i, name := range []string{"addressLine1", "addressLine2", "country"} {
		s, err := r.GetString(name)
		if err != nil {
			return nil, err
		}
		lines[i] = s
	}
	return fmt.Sprintf("%s\n%s\n%s", lines[0], lines[1], lines[2]), nil
}

var userType = mustDefine()

func mustDefine() *core.Type {
	t, err := Define()
	if err != nil {
		panic(err)
	}
	return t
}

// Type returns the shared, frozen User type.
func Type() *core.Type { return userType }

// User is a record of a User type.
type User struct {
	rec *core.Record
}

// New creates a User of the shared type. Both values must be non-empty.
func New(username, email string) (*User, error) {
	return NewOf(userType, username, email)
}

// NewOf creates a User of t, which must be a type returned by Define.
func NewOf(t *core.Type, username, email string) (*User, error) {
	rec, err := t.New(map[string]any{"username": username, "email": email})
	if err != nil {
		return nil, err
	}
	return &User{rec: rec}, nil
}

// Record exposes the underlying record.
func (u *User) Record() *core.Record { return u.rec }

func (u *User) str(name string) string {
	s, _ := u.rec.GetString(name)
	return s
}

func (u *User) Username() string     { return u.str("username") }
func (u *User) Email() string        { return u.str("email") }
func (u *User) UserType() string     { return u.str("userType") }
func (u *User) AddressLine1() string { return u.str("addressLine1") }
func (u *User) AddressLine2() string { return u.str("addressLine2") }
func (u *User) Country() string      { return u.str("country") }

// SetUsername fails with a ValidationError on "" and keeps the old name.
func (u *User) SetUsername(v string) error { return u.rec.Set("username", v) }

// SetEmail fails with a ValidationError on "" and keeps the old address.
func (u *User) SetEmail(v string) error { return u.rec.Set("email", v) }

func (u *User) SetAddressLine1(v string) { _ = u.rec.Set("addressLine1", v) }
func (u *User) SetAddressLine2(v string) { _ = u.rec.Set("addressLine2", v) }
func (u *User) SetCountry(v string)      { _ = u.rec.Set("country", v) }

// Address formats the three address fields on separate lines, empty ones included.
//
// Deprecated: build the address from AddressLine1, AddressLine2 and Country.
func (u *User) Address() string {
	v, err := u.rec.Call("address")
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// MarshalJSON writes the enumerable attributes of u.
func (u *User) MarshalJSON() ([]byte, error) { return u.rec.MarshalJSON() }

// MarshalYAML writes the enumerable attributes of u.
func (u *User) MarshalYAML() (any, error) { return u.rec.MarshalYAML() }
