package core

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/chriso345/decorum/errors"
)

type policyKind int

const (
	policyRequire policyKind = iota + 1
	policyEnumerable
	policyDeprecate
)

// Policy is one of the fixed member policies: Require, Enumerable or
// Deprecate. Policies are applied in the order they are listed.
type Policy struct {
	kind       policyKind
	enumerable bool
}

// Require guards a field so that it can never be set to an empty value.
func Require() Policy { return Policy{kind: policyRequire} }

// Enumerable fixes whether a field or accessor appears when a record is
// listed or serialized. It has no effect on direct access by name.
func Enumerable(isEnumerable bool) Policy {
	return Policy{kind: policyEnumerable, enumerable: isEnumerable}
}

// Deprecate makes every call of a method emit a deprecation warning before
// running the original method.
func Deprecate() Policy { return Policy{kind: policyDeprecate} }

// String returns the policy as it reads in a definition, e.g. "enumerable(false)".
func (p Policy) String() string {
	switch p.kind {
	case policyRequire:
		return "required"
	case policyEnumerable:
		return fmt.Sprintf("enumerable(%t)", p.enumerable)
	case policyDeprecate:
		return "deprecated"
	}
	return "unknown"
}

// apply installs the policy on m.
func (p Policy) apply(m *Member, n Notifier) error {
	switch p.kind {
	case policyRequire:
		if m.Kind != KindField {
			return errors.NewPolicy(p.String(), m.Name, m.Kind.String())
		}
		m.Required = true
	case policyEnumerable:
		if m.Kind == KindMethod {
			return errors.NewPolicy(p.String(), m.Name, m.Kind.String())
		}
		m.Enumerable = p.enumerable
		n.Notify(zapcore.DebugLevel, fmt.Sprintf("The enumerable property of this member is set to: %t", m.Enumerable))
	case policyDeprecate:
		if m.Kind != KindMethod {
			return errors.NewPolicy(p.String(), m.Name, m.Kind.String())
		}
		if !m.Deprecated {
			m.Deprecated = true
			m.call = deprecatedMethod(m.Name, m.call, n)
		}
	default:
		return errors.NewPolicy(p.String(), m.Name, m.Kind.String())
	}
	return nil
}
