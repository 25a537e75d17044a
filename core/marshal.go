package core

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Attribute is one name/value pair of a record listing.
type Attribute struct {
	Name  string
	Value any
}

// Attributes lists the enumerable fields and accessors of r in declaration
// order. Methods and statics are never listed.
func (r *Record) Attributes() ([]Attribute, error) {
	var out []Attribute
	for _, m := range r.typ.members {
		if m.Kind == KindMethod || !m.Enumerable {
			continue
		}
		v, err := r.Get(m.Name)
		if err != nil {
			return nil, fmt.Errorf("reading %s.%s: %w", r.typ.name, m.Name, err)
		}
		out = append(out, Attribute{Name: m.Name, Value: v})
	}
	return out, nil
}

// ToMap returns the record's enumerable attributes as a map.
func (r *Record) ToMap() (map[string]any, error) {
	attrs, err := r.Attributes()
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(attrs))
	for _, a := range attrs {
		out[a.Name] = a.Value
	}
	return out, nil
}

// MarshalJSON writes the enumerable attributes as a JSON object whose keys
// keep declaration order.
func (r *Record) MarshalJSON() ([]byte, error) {
	attrs, err := r.Attributes()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range attrs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", a.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns a mapping node of the enumerable attributes in
// declaration order.
func (r *Record) MarshalYAML() (any, error) {
	attrs, err := r.Attributes()
	if err != nil {
		return nil, err
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range attrs {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Name}
		val := &yaml.Node{}
		if err := val.Encode(a.Value); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", a.Name, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
