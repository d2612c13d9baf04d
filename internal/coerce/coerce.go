// Package coerce converts decoded JSON values into the native representation
// a schema targets. Each function returns the coerced value, or the actual
// kind of the rejected input for the type-error message. Coercing a value
// already of the exact target kind is a no-op: the value is returned as-is,
// never round-tripped through an encoder.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"

	okschema "github.com/reoring/okschema"
)

const (
	minInt64AsFloat  = -9223372036854775808.0 // -2^63
	maxInt64AsFloat  = 9223372036854775808.0  // 2^63
	maxUint64AsFloat = 18446744073709551616.0 // 2^64
)

// Bool accepts native booleans and the strings "true"/"false" (case
// sensitive).
func Bool(v any) (bool, okschema.JSONType, bool) {
	switch t := v.(type) {
	case bool:
		return t, 0, true
	case string:
		switch t {
		case "true":
			return true, 0, true
		case "false":
			return false, 0, true
		}
		return false, okschema.TypeString, false
	}
	return false, okschema.KindOf(v), false
}

// Int64 accepts integral numbers, floats with a zero fractional part,
// unsigned values that fit the signed range and base-10 integer strings.
// Nothing is silently truncated: a fractional float reports Float, an
// overflowing unsigned reports Unsigned Integer.
func Int64(v any) (int64, okschema.JSONType, bool) {
	switch t := v.(type) {
	case int64:
		return t, 0, true
	case int:
		return int64(t), 0, true
	case int8:
		return int64(t), 0, true
	case int16:
		return int64(t), 0, true
	case int32:
		return int64(t), 0, true
	case uint8:
		return int64(t), 0, true
	case uint16:
		return int64(t), 0, true
	case uint32:
		return int64(t), 0, true
	case uint:
		if uint64(t) > math.MaxInt64 {
			return 0, okschema.TypeUnsigned, false
		}
		return int64(t), 0, true
	case uint64:
		if t > math.MaxInt64 {
			return 0, okschema.TypeUnsigned, false
		}
		return int64(t), 0, true
	case float32:
		return int64FromFloat(float64(t))
	case float64:
		return int64FromFloat(t)
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return i, 0, true
		}
		if _, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return 0, okschema.TypeUnsigned, false
		}
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return int64FromFloat(f)
		}
		return 0, okschema.TypeNumber, false
	case string:
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return i, 0, true
		}
		return 0, okschema.TypeString, false
	}
	return 0, okschema.KindOf(v), false
}

func int64FromFloat(f float64) (int64, okschema.JSONType, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, okschema.TypeFloat, false
	}
	if f < minInt64AsFloat || f >= maxInt64AsFloat {
		return 0, okschema.TypeFloat, false
	}
	return int64(f), 0, true
}

// Uint64 accepts unsigned integers, non-negative integral floats,
// non-negative signed integers and non-negative integer strings.
func Uint64(v any) (uint64, okschema.JSONType, bool) {
	switch t := v.(type) {
	case uint64:
		return t, 0, true
	case uint:
		return uint64(t), 0, true
	case uint8:
		return uint64(t), 0, true
	case uint16:
		return uint64(t), 0, true
	case uint32:
		return uint64(t), 0, true
	case int:
		return uint64FromInt(int64(t))
	case int8:
		return uint64FromInt(int64(t))
	case int16:
		return uint64FromInt(int64(t))
	case int32:
		return uint64FromInt(int64(t))
	case int64:
		return uint64FromInt(t)
	case float32:
		return uint64FromFloat(float64(t))
	case float64:
		return uint64FromFloat(t)
	case json.Number:
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return u, 0, true
		}
		if _, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return 0, okschema.TypeInteger, false
		}
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return uint64FromFloat(f)
		}
		return 0, okschema.TypeNumber, false
	case string:
		if u, err := strconv.ParseUint(t, 10, 64); err == nil {
			return u, 0, true
		}
		return 0, okschema.TypeString, false
	}
	return 0, okschema.KindOf(v), false
}

func uint64FromInt(i int64) (uint64, okschema.JSONType, bool) {
	if i < 0 {
		return 0, okschema.TypeInteger, false
	}
	return uint64(i), 0, true
}

func uint64FromFloat(f float64) (uint64, okschema.JSONType, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, okschema.TypeFloat, false
	}
	if f < 0 || f >= maxUint64AsFloat {
		return 0, okschema.TypeFloat, false
	}
	return uint64(f), 0, true
}

// Float64 accepts any numeric value and float-parsing strings.
func Float64(v any) (float64, okschema.JSONType, bool) {
	switch t := v.(type) {
	case float64:
		return t, 0, true
	case float32:
		return float64(t), 0, true
	case int:
		return float64(t), 0, true
	case int8:
		return float64(t), 0, true
	case int16:
		return float64(t), 0, true
	case int32:
		return float64(t), 0, true
	case int64:
		return float64(t), 0, true
	case uint:
		return float64(t), 0, true
	case uint8:
		return float64(t), 0, true
	case uint16:
		return float64(t), 0, true
	case uint32:
		return float64(t), 0, true
	case uint64:
		return float64(t), 0, true
	case json.Number:
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return f, 0, true
		}
		return 0, okschema.TypeNumber, false
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, 0, true
		}
		return 0, okschema.TypeString, false
	}
	return 0, okschema.KindOf(v), false
}

// String accepts native strings as-is and converts booleans and numbers to
// their canonical textual form. Objects, arrays and null are never
// stringified.
func String(v any) (string, okschema.JSONType, bool) {
	switch t := v.(type) {
	case string:
		return t, 0, true
	case bool:
		return strconv.FormatBool(t), 0, true
	case json.Number:
		return t.String(), 0, true
	case int:
		return strconv.FormatInt(int64(t), 10), 0, true
	case int8:
		return strconv.FormatInt(int64(t), 10), 0, true
	case int16:
		return strconv.FormatInt(int64(t), 10), 0, true
	case int32:
		return strconv.FormatInt(int64(t), 10), 0, true
	case int64:
		return strconv.FormatInt(t, 10), 0, true
	case uint:
		return strconv.FormatUint(uint64(t), 10), 0, true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), 0, true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), 0, true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), 0, true
	case uint64:
		return strconv.FormatUint(t, 10), 0, true
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 64), 0, true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), 0, true
	}
	return "", okschema.KindOf(v), false
}

// Array accepts only already-decoded arrays; no cross-kind coercion.
func Array(v any) ([]any, okschema.JSONType, bool) {
	if a, ok := v.([]any); ok {
		return a, 0, true
	}
	return nil, okschema.KindOf(v), false
}

// Object accepts only already-decoded objects; no cross-kind coercion.
func Object(v any) (map[string]any, okschema.JSONType, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, 0, true
	}
	return nil, okschema.KindOf(v), false
}
