package dsl

import (
	"fmt"
	"strings"

	okschema "github.com/reoring/okschema"
)

// test is a single named predicate bound to a message template. The template
// may contain a "<label>" placeholder substituted when the test fails.
type test[T any] struct {
	rule    string
	code    string
	message string
	params  map[string]any
	fn      func(T) (bool, error)
}

// core drives validation for one schema node: presence and null handling,
// coercion into the native representation T, ordered transforms, then every
// registered test with no short-circuit.
type core[T any] struct {
	typ        okschema.JSONType
	label      string
	desc       string
	optional   bool
	nullable   bool
	coerce     func(any) (T, okschema.JSONType, bool)
	tests      []test[T]
	transforms []func(T) T
}

func newCore[T any](typ okschema.JSONType, coerce func(any) (T, okschema.JSONType, bool)) core[T] {
	return core[T]{typ: typ, coerce: coerce}
}

func (c *core[T]) addTest(rule, code, message string, params map[string]any, fn func(T) (bool, error)) {
	c.tests = append(c.tests, test[T]{rule: rule, code: code, message: message, params: params, fn: fn})
}

func (c *core[T]) addTransform(fn func(T) T) {
	c.transforms = append(c.transforms, fn)
}

// displayLabel resolves the label substituted into human-readable messages:
// the explicit label when set, else the structural path, else the kind name.
func (c *core[T]) displayLabel(path string) string {
	if c.label != "" {
		return c.label
	}
	if path != "" {
		return path
	}
	return c.typ.String()
}

// exec evaluates one input value in this exact order: absence, explicit null,
// coercion, transforms, tests. Tests only run after a successful coercion and
// all of them run regardless of earlier failures. A nullable schema returns
// null verbatim without coercing or testing it.
func (c *core[T]) exec(path string, v any, present bool) (any, bool, okschema.Issues) {
	if !present {
		if c.optional {
			return nil, false, nil
		}
		return nil, false, okschema.Issues{c.typeIssue(path, okschema.TypeNone)}
	}
	if v == nil {
		if c.nullable {
			return nil, true, nil
		}
		return nil, false, okschema.Issues{c.typeIssue(path, okschema.TypeNull)}
	}
	t, actual, ok := c.coerce(v)
	if !ok {
		return nil, false, okschema.Issues{c.typeIssue(path, actual)}
	}
	for _, tr := range c.transforms {
		t = tr(t)
	}
	label := c.displayLabel(path)
	var iss okschema.Issues
	for _, ts := range c.tests {
		pass, err := ts.fn(t)
		if err != nil {
			iss = okschema.AppendIssues(iss, okschema.Issue{
				Path:    path,
				Code:    okschema.CodeCustom,
				Message: strings.ReplaceAll(err.Error(), "<label>", label),
				Cause:   err,
				Rule:    ts.rule,
			})
			continue
		}
		if !pass {
			iss = okschema.AppendIssues(iss, okschema.Issue{
				Path:    path,
				Code:    ts.code,
				Message: strings.ReplaceAll(ts.message, "<label>", label),
				Params:  ts.params,
				Rule:    ts.rule,
			})
		}
	}
	if len(iss) > 0 {
		return nil, false, iss
	}
	return t, true, nil
}

func (c *core[T]) typeIssue(path string, actual okschema.JSONType) okschema.Issue {
	return okschema.Issue{
		Path:    path,
		Code:    okschema.CodeInvalidType,
		Message: fmt.Sprintf("expected %s, got %s", c.typ, actual),
		Params:  map[string]any{"expected": c.typ.String(), "got": actual.String()},
	}
}
