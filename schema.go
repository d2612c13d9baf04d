package okschema

// Schema is the polymorphic validation contract implemented by every builder
// in the dsl package. Container schemas hold heterogeneous children behind
// this interface and recurse through ValidateAt with the child's structural
// path.
//
// present reports whether a value existed at all; a present nil is an explicit
// JSON null. ValidateAt returns the coerced output, whether a value was
// produced (an optional schema produces none for absent input), and every
// issue found. Validation never stops at the first failure: all issues for the
// subtree rooted at path are returned.
type Schema interface {
	ValidateAt(path string, v any, present bool) (out any, ok bool, iss Issues)
}

// Validate validates an already-decoded JSON value against s at the root
// path. On success it returns the coerced, normalized value; on failure the
// returned error is always Issues.
func Validate(s Schema, v any) (any, error) {
	out, _, iss := s.ValidateAt("", v, true)
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// Is reports whether v conforms to the schema s.
func Is(s Schema, v any) bool {
	_, err := Validate(s, v)
	return err == nil
}
