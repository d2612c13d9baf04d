package okschema

import "encoding/json"

// JSONType enumerates the semantic kinds a schema can target. TypeNumber,
// TypeNull and TypeNone are reporting-only: they describe the actual kind of
// an invalid input and never appear as a coercion target.
type JSONType int

const (
	TypeBoolean JSONType = iota
	TypeInteger
	TypeUnsigned
	TypeFloat
	TypeString
	TypeArray
	TypeObject
	TypeNumber // some numeric value, reported against non-numeric targets
	TypeNull   // explicit JSON null
	TypeNone   // absent value, e.g. a missing object key
)

func (t JSONType) String() string {
	switch t {
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeUnsigned:
		return "Unsigned Integer"
	case TypeFloat:
		return "Float"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	case TypeNumber:
		return "Number"
	case TypeNull:
		return "null"
	case TypeNone:
		return "none"
	}
	return "unknown"
}

// KindOf classifies a decoded value. Every numeric representation collapses
// to TypeNumber; coercion distinguishes Integer/Unsigned/Float where the
// distinction matters. Values outside the decoded-JSON vocabulary classify as
// TypeNone.
func KindOf(v any) JSONType {
	switch v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case string:
		return TypeString
	case json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return TypeNumber
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	}
	return TypeNone
}
