// Package okschema provides:
//
//   - Composable schema construction for JSON-shaped values (boolean, integer,
//     unsigned, float, string, array, object) via chaining builders
//   - Loose coercion of decoded input into the schema's target kind
//     (numeric strings, integral floats, stringified booleans)
//   - A stable error model via Issues (path, code, message) that collects every
//     failure instead of stopping at the first
//   - Input helpers for JSON (goccy/go-json) and YAML (yaml.v3) sources
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations under internal/.
//   - Place the builder DSL under dsl/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Object().
//		String("name", func(f *dsl.StringSchema) *dsl.StringSchema { return f.Trim().MinLength(1) }).
//		Integer("age", func(f *dsl.NumberSchema[int64]) *dsl.NumberSchema[int64] { return f.Min(0) })
//
//	out, err := okschema.ValidateJSON(s, data)
//	if iss, ok := okschema.AsIssues(err); ok {
//		// each Issue carries the dotted/bracketed path that produced it
//	}
package okschema
