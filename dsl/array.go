package dsl

import (
	"fmt"

	okschema "github.com/reoring/okschema"
	"github.com/reoring/okschema/internal/coerce"
)

// ArraySchema validates arrays and, when an element schema is configured via
// Of, every element against it. Elements validate independently: all failing
// indices surface together and the array never partially succeeds.
type ArraySchema struct {
	c    core[[]any]
	elem okschema.Schema
}

// Array returns a fresh array schema.
func Array() *ArraySchema {
	return &ArraySchema{c: newCore(okschema.TypeArray, coerce.Array)}
}

// Label sets the name substituted into failure messages in place of the
// structural path.
func (s *ArraySchema) Label(label string) *ArraySchema { s.c.label = label; return s }

// Desc attaches documentation. It is never enforced.
func (s *ArraySchema) Desc(desc string) *ArraySchema { s.c.desc = desc; return s }

// Optional accepts absent input, producing no value instead of an error.
func (s *ArraySchema) Optional() *ArraySchema { s.c.optional = true; return s }

// Nullable accepts explicit null verbatim, bypassing coercion, length tests
// and element validation.
func (s *ArraySchema) Nullable() *ArraySchema { s.c.nullable = true; return s }

// Of validates every element against elem at path "parent[index]".
func (s *ArraySchema) Of(elem okschema.Schema) *ArraySchema { s.elem = elem; return s }

// Length requires exactly n elements.
func (s *ArraySchema) Length(n int) *ArraySchema {
	s.c.addTest("length", okschema.CodeInvalidLength,
		fmt.Sprintf("<label> must contain exactly %d elements.", n),
		map[string]any{"length": n},
		func(v []any) (bool, error) { return len(v) == n, nil })
	return s
}

// MinLength requires at least n elements.
func (s *ArraySchema) MinLength(n int) *ArraySchema {
	s.c.addTest("min_length", okschema.CodeTooShort,
		fmt.Sprintf("<label> must contain at least %d elements.", n),
		map[string]any{"min": n},
		func(v []any) (bool, error) { return len(v) >= n, nil })
	return s
}

// MaxLength requires at most n elements.
func (s *ArraySchema) MaxLength(n int) *ArraySchema {
	s.c.addTest("max_length", okschema.CodeTooLong,
		fmt.Sprintf("<label> must contain at most %d elements.", n),
		map[string]any{"max": n},
		func(v []any) (bool, error) { return len(v) <= n, nil })
	return s
}

// Test registers a custom predicate over the whole array. The message may
// contain a "<label>" placeholder.
func (s *ArraySchema) Test(rule, message string, fn func([]any) (bool, error)) *ArraySchema {
	s.c.addTest(rule, okschema.CodeCustom, message, nil, fn)
	return s
}

// ValidateAt implements okschema.Schema. The container core runs first; when
// it produced a value and an element schema is configured, every element is
// visited exactly once regardless of earlier failures.
func (s *ArraySchema) ValidateAt(path string, v any, present bool) (any, bool, okschema.Issues) {
	out, ok, iss := s.c.exec(path, v, present)
	if len(iss) > 0 || !ok || out == nil || s.elem == nil {
		return out, ok, iss
	}
	elems := out.([]any)
	result := make([]any, 0, len(elems))
	var all okschema.Issues
	for i, ev := range elems {
		cv, emitted, ci := s.elem.ValidateAt(fmt.Sprintf("%s[%d]", path, i), ev, true)
		if len(ci) > 0 {
			all = okschema.AppendIssues(all, ci...)
			continue
		}
		if emitted {
			result = append(result, cv)
		}
	}
	if len(all) > 0 {
		return nil, false, all
	}
	return result, true, nil
}

// Validate validates v at the root path.
func (s *ArraySchema) Validate(v any) (any, error) { return okschema.Validate(s, v) }
