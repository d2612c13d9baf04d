package dsl

import (
	okschema "github.com/reoring/okschema"
	"github.com/reoring/okschema/internal/coerce"
)

// BooleanSchema validates booleans. The strings "true" and "false" coerce to
// their boolean values; everything else is a type error.
type BooleanSchema struct {
	c core[bool]
}

// Boolean returns a fresh boolean schema.
func Boolean() *BooleanSchema {
	return &BooleanSchema{c: newCore(okschema.TypeBoolean, coerce.Bool)}
}

// Label sets the name substituted into failure messages in place of the
// structural path.
func (s *BooleanSchema) Label(label string) *BooleanSchema { s.c.label = label; return s }

// Desc attaches documentation. It is never enforced.
func (s *BooleanSchema) Desc(desc string) *BooleanSchema { s.c.desc = desc; return s }

// Optional accepts absent input, producing no value instead of an error.
func (s *BooleanSchema) Optional() *BooleanSchema { s.c.optional = true; return s }

// Nullable accepts explicit null verbatim, bypassing coercion and tests.
func (s *BooleanSchema) Nullable() *BooleanSchema { s.c.nullable = true; return s }

// Test registers a custom predicate. The message may contain a "<label>"
// placeholder.
func (s *BooleanSchema) Test(rule, message string, fn func(bool) (bool, error)) *BooleanSchema {
	s.c.addTest(rule, okschema.CodeCustom, message, nil, fn)
	return s
}

// ValidateAt implements okschema.Schema.
func (s *BooleanSchema) ValidateAt(path string, v any, present bool) (any, bool, okschema.Issues) {
	return s.c.exec(path, v, present)
}

// Validate validates v at the root path.
func (s *BooleanSchema) Validate(v any) (any, error) { return okschema.Validate(s, v) }
