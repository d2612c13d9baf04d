package okschema

import (
	"bytes"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ValidateJSON decodes data as a single JSON document and validates the
// result against s. Numbers are decoded as json.Number so integer, unsigned
// and float coercion can tell them apart without precision loss.
func ValidateJSON(s Schema, data []byte) (any, error) {
	return ValidateJSONReader(s, bytes.NewReader(data))
}

// ValidateJSONReader is ValidateJSON over an io.Reader.
func ValidateJSONReader(s Schema, r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{{Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return Validate(s, v)
}

// EncodeJSON marshals a validated value back to JSON bytes.
func EncodeJSON(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

// ValidateYAML decodes a single YAML document and validates it against s.
// The decoded tree is normalized into the JSON value vocabulary first
// (yaml.v3 produces int scalars and, for non-string keys, map[any]any nodes).
func ValidateYAML(s Schema, data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, Issues{{Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return Validate(s, normalizeYAML(v))
}

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = normalizeYAML(val)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			m[ks] = normalizeYAML(val)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalizeYAML(t[i])
		}
		return out
	case int:
		return int64(t)
	default:
		return v
	}
}
