package dsl

import (
	okschema "github.com/reoring/okschema"
	"github.com/reoring/okschema/internal/coerce"
)

// ObjectSchema validates objects and each declared field against its child
// schema. Fields validate in declaration order (deterministic; callers must
// not rely on any other order). Undeclared input keys are dropped from the
// output; any failing field fails the whole object.
type ObjectSchema struct {
	c      core[map[string]any]
	fields map[string]okschema.Schema
	keys   []string // declaration order
}

// Object returns a fresh object schema.
func Object() *ObjectSchema {
	return &ObjectSchema{
		c:      newCore(okschema.TypeObject, coerce.Object),
		fields: map[string]okschema.Schema{},
	}
}

// Label sets the name substituted into failure messages in place of the
// structural path.
func (s *ObjectSchema) Label(label string) *ObjectSchema { s.c.label = label; return s }

// Desc attaches documentation. It is never enforced.
func (s *ObjectSchema) Desc(desc string) *ObjectSchema { s.c.desc = desc; return s }

// Optional accepts absent input, producing no value instead of an error.
func (s *ObjectSchema) Optional() *ObjectSchema { s.c.optional = true; return s }

// Nullable accepts explicit null verbatim, bypassing coercion and field
// validation.
func (s *ObjectSchema) Nullable() *ObjectSchema { s.c.nullable = true; return s }

// Key declares a field with an arbitrary child schema. Redeclaring a key
// replaces the previous schema but keeps its original position.
func (s *ObjectSchema) Key(key string, child okschema.Schema) *ObjectSchema {
	if _, exists := s.fields[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.fields[key] = child
	return s
}

// Boolean declares a boolean field. A nil build keeps the default child.
func (s *ObjectSchema) Boolean(key string, build func(*BooleanSchema) *BooleanSchema) *ObjectSchema {
	child := Boolean()
	if build != nil {
		child = build(child)
	}
	return s.Key(key, child)
}

// Integer declares a signed integer field.
func (s *ObjectSchema) Integer(key string, build func(*NumberSchema[int64]) *NumberSchema[int64]) *ObjectSchema {
	child := Integer()
	if build != nil {
		child = build(child)
	}
	return s.Key(key, child)
}

// Unsigned declares an unsigned integer field.
func (s *ObjectSchema) Unsigned(key string, build func(*NumberSchema[uint64]) *NumberSchema[uint64]) *ObjectSchema {
	child := Unsigned()
	if build != nil {
		child = build(child)
	}
	return s.Key(key, child)
}

// Float declares a float field.
func (s *ObjectSchema) Float(key string, build func(*NumberSchema[float64]) *NumberSchema[float64]) *ObjectSchema {
	child := Float()
	if build != nil {
		child = build(child)
	}
	return s.Key(key, child)
}

// String declares a string field.
func (s *ObjectSchema) String(key string, build func(*StringSchema) *StringSchema) *ObjectSchema {
	child := String()
	if build != nil {
		child = build(child)
	}
	return s.Key(key, child)
}

// Object declares a nested object field.
func (s *ObjectSchema) Object(key string, build func(*ObjectSchema) *ObjectSchema) *ObjectSchema {
	child := Object()
	if build != nil {
		child = build(child)
	}
	return s.Key(key, child)
}

// Array declares an array field.
func (s *ObjectSchema) Array(key string, build func(*ArraySchema) *ArraySchema) *ObjectSchema {
	child := Array()
	if build != nil {
		child = build(child)
	}
	return s.Key(key, child)
}

// Test registers a custom predicate over the whole object. The message may
// contain a "<label>" placeholder.
func (s *ObjectSchema) Test(rule, message string, fn func(map[string]any) (bool, error)) *ObjectSchema {
	s.c.addTest(rule, okschema.CodeCustom, message, nil, fn)
	return s
}

// ValidateAt implements okschema.Schema. The container core runs first; when
// it produced a value and fields are declared, every declared field is
// visited exactly once at path "parent.key" (bare key at the top level),
// regardless of earlier failures. An optional absent field contributes
// nothing to the output.
func (s *ObjectSchema) ValidateAt(path string, v any, present bool) (any, bool, okschema.Issues) {
	out, ok, iss := s.c.exec(path, v, present)
	if len(iss) > 0 || !ok || out == nil || len(s.keys) == 0 {
		return out, ok, iss
	}
	src := out.(map[string]any)
	result := make(map[string]any, len(s.keys))
	var all okschema.Issues
	for _, key := range s.keys {
		childPath := key
		if path != "" {
			childPath = path + "." + key
		}
		fv, fpresent := src[key]
		cv, emitted, ci := s.fields[key].ValidateAt(childPath, fv, fpresent)
		if len(ci) > 0 {
			all = okschema.AppendIssues(all, ci...)
			continue
		}
		if emitted {
			result[key] = cv
		}
	}
	if len(all) > 0 {
		return nil, false, all
	}
	return result, true, nil
}

// Validate validates v at the root path.
func (s *ObjectSchema) Validate(v any) (any, error) { return okschema.Validate(s, v) }
