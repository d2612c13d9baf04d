package dsl

import (
	"fmt"
	"regexp"
	"strings"

	okschema "github.com/reoring/okschema"
	"github.com/reoring/okschema/internal/coerce"
)

// StringSchema validates strings. Booleans and numbers coerce to their
// canonical textual form; objects, arrays and null never do. Transforms
// (Trim, Uppercase, Lowercase) run in the order chained, before any test.
type StringSchema struct {
	c core[string]
}

// String returns a fresh string schema.
func String() *StringSchema {
	return &StringSchema{c: newCore(okschema.TypeString, coerce.String)}
}

// Label sets the name substituted into failure messages in place of the
// structural path.
func (s *StringSchema) Label(label string) *StringSchema { s.c.label = label; return s }

// Desc attaches documentation. It is never enforced.
func (s *StringSchema) Desc(desc string) *StringSchema { s.c.desc = desc; return s }

// Optional accepts absent input, producing no value instead of an error.
func (s *StringSchema) Optional() *StringSchema { s.c.optional = true; return s }

// Nullable accepts explicit null verbatim, bypassing coercion and tests.
func (s *StringSchema) Nullable() *StringSchema { s.c.nullable = true; return s }

// Length requires exactly n bytes.
func (s *StringSchema) Length(n int) *StringSchema {
	s.c.addTest("length", okschema.CodeInvalidLength,
		fmt.Sprintf("<label> must be exactly %d characters long.", n),
		map[string]any{"length": n},
		func(v string) (bool, error) { return len(v) == n, nil })
	return s
}

// MinLength requires at least n bytes.
func (s *StringSchema) MinLength(n int) *StringSchema {
	s.c.addTest("min_length", okschema.CodeTooShort,
		fmt.Sprintf("<label> must be at least %d characters long.", n),
		map[string]any{"min": n},
		func(v string) (bool, error) { return len(v) >= n, nil })
	return s
}

// MaxLength requires at most n bytes.
func (s *StringSchema) MaxLength(n int) *StringSchema {
	s.c.addTest("max_length", okschema.CodeTooLong,
		fmt.Sprintf("<label> must be at most %d characters long.", n),
		map[string]any{"max": n},
		func(v string) (bool, error) { return len(v) <= n, nil })
	return s
}

// Matches requires the value to match pattern. An invalid pattern is a
// programmer error and panics at construction time.
func (s *StringSchema) Matches(pattern string) *StringSchema {
	return s.Regex(regexp.MustCompile(pattern))
}

// Regex requires the value to match a pre-compiled pattern. Case sensitivity
// is controlled by the pattern itself.
func (s *StringSchema) Regex(re *regexp.Regexp) *StringSchema {
	s.c.addTest("pattern", okschema.CodePattern,
		fmt.Sprintf("<label> must match the pattern %s.", re.String()),
		map[string]any{"pattern": re.String()},
		func(v string) (bool, error) { return re.MatchString(v), nil })
	return s
}

// Trim removes leading and trailing whitespace before any test runs.
func (s *StringSchema) Trim() *StringSchema {
	s.c.addTransform(strings.TrimSpace)
	return s
}

// Uppercase folds the value to upper case before any test runs.
func (s *StringSchema) Uppercase() *StringSchema {
	s.c.addTransform(strings.ToUpper)
	return s
}

// Lowercase folds the value to lower case before any test runs.
func (s *StringSchema) Lowercase() *StringSchema {
	s.c.addTransform(strings.ToLower)
	return s
}

// Test registers a custom predicate. The message may contain a "<label>"
// placeholder.
func (s *StringSchema) Test(rule, message string, fn func(string) (bool, error)) *StringSchema {
	s.c.addTest(rule, okschema.CodeCustom, message, nil, fn)
	return s
}

// ValidateAt implements okschema.Schema.
func (s *StringSchema) ValidateAt(path string, v any, present bool) (any, bool, okschema.Issues) {
	return s.c.exec(path, v, present)
}

// Validate validates v at the root path.
func (s *StringSchema) Validate(v any) (any, error) { return okschema.Validate(s, v) }
