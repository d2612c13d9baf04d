package dsl_test

import (
	"encoding/json"
	"testing"

	okschema "github.com/reoring/okschema"
	g "github.com/reoring/okschema/dsl"
)

func TestBoolean_Basic(t *testing.T) {
	s := g.Boolean()

	for _, in := range []any{true, false} {
		v, err := s.Validate(in)
		if err != nil || v != in {
			t.Fatalf("Validate(%v): got v=%v err=%v", in, v, err)
		}
	}

	// exact string literals coerce, case-sensitively
	if v, err := s.Validate("true"); err != nil || v != true {
		t.Fatalf(`Validate("true"): got v=%v err=%v`, v, err)
	}
	if v, err := s.Validate("false"); err != nil || v != false {
		t.Fatalf(`Validate("false"): got v=%v err=%v`, v, err)
	}
	if _, err := s.Validate("True"); err == nil {
		t.Fatalf(`expected error for "True"`)
	}
}

func TestBoolean_RejectsOtherKinds(t *testing.T) {
	s := g.Boolean()

	cases := []struct {
		name string
		in   any
		got  string
	}{
		{"null", nil, "null"},
		{"string", "foo", "String"},
		{"number", json.Number("1"), "Number"},
		{"int", 1, "Number"},
		{"array", []any{}, "Array"},
		{"object", map[string]any{}, "Object"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Validate(tc.in)
			iss := mustIssues(t, err)
			if len(iss) != 1 || iss[0].Code != okschema.CodeInvalidType {
				t.Fatalf("expected single invalid_type, got %v", iss)
			}
			if got := iss[0].Params["got"]; got != tc.got {
				t.Fatalf("expected got=%q in params, got %v", tc.got, got)
			}
		})
	}
}

func TestBoolean_OptionalAndNullable(t *testing.T) {
	// absent + optional: no value, no issues
	out, ok, iss := g.Boolean().Optional().ValidateAt("", nil, false)
	if out != nil || ok || len(iss) > 0 {
		t.Fatalf("optional absent: got out=%v ok=%v iss=%v", out, ok, iss)
	}

	// absent + required: single type error against "none"
	_, _, iss = g.Boolean().ValidateAt("", nil, false)
	if len(iss) != 1 || iss[0].Code != okschema.CodeInvalidType || iss[0].Params["got"] != "none" {
		t.Fatalf("required absent: got %v", iss)
	}

	// explicit null + nullable: null verbatim
	v, err := g.Boolean().Nullable().Validate(nil)
	if err != nil || v != nil {
		t.Fatalf("nullable null: got v=%v err=%v", v, err)
	}
}
