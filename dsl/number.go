package dsl

import (
	"fmt"

	okschema "github.com/reoring/okschema"
	"github.com/reoring/okschema/internal/coerce"
)

// Numeric is the set of native representations a NumberSchema targets.
type Numeric interface {
	~int64 | ~uint64 | ~float64
}

// NumberSchema validates numbers, generic over the signed, unsigned and
// floating representations. Constraint methods compare via the native
// ordering of N.
type NumberSchema[N Numeric] struct {
	c core[N]
}

// Integer returns a fresh signed integer schema. Integral floats, unsigned
// values within the signed range and base-10 integer strings coerce; a
// fractional float is rejected, not truncated.
func Integer() *NumberSchema[int64] {
	return &NumberSchema[int64]{c: newCore(okschema.TypeInteger, coerce.Int64)}
}

// Unsigned returns a fresh unsigned integer schema.
func Unsigned() *NumberSchema[uint64] {
	return &NumberSchema[uint64]{c: newCore(okschema.TypeUnsigned, coerce.Uint64)}
}

// Float returns a fresh float schema. Any numeric value coerces.
func Float() *NumberSchema[float64] {
	return &NumberSchema[float64]{c: newCore(okschema.TypeFloat, coerce.Float64)}
}

// Label sets the name substituted into failure messages in place of the
// structural path.
func (s *NumberSchema[N]) Label(label string) *NumberSchema[N] { s.c.label = label; return s }

// Desc attaches documentation. It is never enforced.
func (s *NumberSchema[N]) Desc(desc string) *NumberSchema[N] { s.c.desc = desc; return s }

// Optional accepts absent input, producing no value instead of an error.
func (s *NumberSchema[N]) Optional() *NumberSchema[N] { s.c.optional = true; return s }

// Nullable accepts explicit null verbatim, bypassing coercion and tests.
func (s *NumberSchema[N]) Nullable() *NumberSchema[N] { s.c.nullable = true; return s }

// Min requires the value to be at least n.
func (s *NumberSchema[N]) Min(n N) *NumberSchema[N] {
	s.c.addTest("min", okschema.CodeTooSmall,
		fmt.Sprintf("<label> must be at least %v.", n),
		map[string]any{"min": n},
		func(v N) (bool, error) { return v >= n, nil })
	return s
}

// Max requires the value to be at most n.
func (s *NumberSchema[N]) Max(n N) *NumberSchema[N] {
	s.c.addTest("max", okschema.CodeTooBig,
		fmt.Sprintf("<label> must be at most %v.", n),
		map[string]any{"max": n},
		func(v N) (bool, error) { return v <= n, nil })
	return s
}

// GreaterThan requires the value to be strictly greater than n.
func (s *NumberSchema[N]) GreaterThan(n N) *NumberSchema[N] {
	s.c.addTest("greater_than", okschema.CodeTooSmall,
		fmt.Sprintf("<label> must be greater than %v.", n),
		map[string]any{"exclusiveMin": n},
		func(v N) (bool, error) { return v > n, nil })
	return s
}

// LessThan requires the value to be strictly less than n.
func (s *NumberSchema[N]) LessThan(n N) *NumberSchema[N] {
	s.c.addTest("less_than", okschema.CodeTooBig,
		fmt.Sprintf("<label> must be less than %v.", n),
		map[string]any{"exclusiveMax": n},
		func(v N) (bool, error) { return v < n, nil })
	return s
}

// Test registers a custom predicate. The message may contain a "<label>"
// placeholder.
func (s *NumberSchema[N]) Test(rule, message string, fn func(N) (bool, error)) *NumberSchema[N] {
	s.c.addTest(rule, okschema.CodeCustom, message, nil, fn)
	return s
}

// ValidateAt implements okschema.Schema.
func (s *NumberSchema[N]) ValidateAt(path string, v any, present bool) (any, bool, okschema.Issues) {
	return s.c.exec(path, v, present)
}

// Validate validates v at the root path.
func (s *NumberSchema[N]) Validate(v any) (any, error) { return okschema.Validate(s, v) }
