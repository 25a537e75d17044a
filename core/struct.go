package core

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/chriso345/decorum/errors"
	"github.com/chriso345/decorum/internal/common"
)

// DefineStruct starts a type definition from an annotated struct (or a
// pointer to one). Every named field becomes a data field, in order:
//
//   - `attr:"name"` sets the attribute name; `attr:"-"` skips the field.
//     Without it the field name with a lowered first letter is used.
//   - `required:"true"` applies Require.
//   - `enumerable:"false"` applies Enumerable(false).
//   - `default:"..."` sets the default of a string field.
//
// Exported field values of proto become defaults. An embedded Decorum
// supplies the type name through its `name` tag, falling back to the struct
// type name. An embedded Frozen freezes the type at Build.
//
// Accessors, methods and statics are added on the returned builder.
//
// Usage:
//
//	b := decorum.DefineStruct(struct {
//		decorum.Decorum `name:"User"`
//		decorum.Frozen
//
//		Username string `required:"true"`
//		Country  string
//	}{})
func DefineStruct(proto any, opts ...Option) *TypeBuilder {
	st := common.GetStructType(proto)
	if st == nil {
		return &TypeBuilder{t: newType("", opts...), err: errors.NewDefinition(
			fmt.Sprintf("invalid type: must pass struct or pointer to struct, got %T", proto))}
	}

	name := st.Name()
	if f, ok := common.MarkerField(st, "Decorum"); ok {
		if tag := f.Tag.Get("name"); tag != "" {
			name = tag
		}
	}
	b := Define(name, opts...)
	if name == "" {
		b.err = errors.NewDefinition("struct must embed `Decorum` with `name` tag or be a named type")
		return b
	}
	if _, ok := common.MarkerField(st, "Frozen"); ok {
		b.Frozen()
	}

	pv := reflect.ValueOf(proto)
	if pv.Kind() == reflect.Pointer {
		if pv.IsNil() {
			pv = reflect.Zero(st)
		} else {
			pv = pv.Elem()
		}
	}

	for i := range st.NumField() {
		field := st.Field(i)
		if field.Anonymous {
			continue
		}
		tags := common.GetTags(field)
		if tags["attr"] == "-" {
			continue
		}

		var def any
		if field.IsExported() {
			def = pv.Field(i).Interface()
		} else {
			def = reflect.Zero(field.Type).Interface()
		}
		if d, ok := tags["default"]; ok {
			if field.Type.Kind() != reflect.String {
				b.err = errors.NewDefinition(fmt.Sprintf("default tag on %s: only string fields take defaults", field.Name))
				return b
			}
			def = d
		}

		var policies []Policy
		if v, ok := tags["required"]; ok {
			req, err := strconv.ParseBool(v)
			if err != nil {
				b.err = errors.NewDefinition(fmt.Sprintf("required tag on %s: %v", field.Name, err))
				return b
			}
			if req {
				policies = append(policies, Require())
			}
		}
		if v, ok := tags["enumerable"]; ok {
			enum, err := strconv.ParseBool(v)
			if err != nil {
				b.err = errors.NewDefinition(fmt.Sprintf("enumerable tag on %s: %v", field.Name, err))
				return b
			}
			policies = append(policies, Enumerable(enum))
		}

		b.Field(tags["attr"], def, policies...)
		if b.err != nil {
			return b
		}
	}
	return b
}
