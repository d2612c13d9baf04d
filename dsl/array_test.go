package dsl_test

import (
	"reflect"
	"testing"

	okschema "github.com/reoring/okschema"
	g "github.com/reoring/okschema/dsl"
)

func TestArray_Basic(t *testing.T) {
	s := g.Array()

	v, err := s.Validate([]any{})
	if err != nil {
		t.Fatalf("empty array: %v", err)
	}
	if !reflect.DeepEqual(v, []any{}) {
		t.Fatalf("empty array: got %v", v)
	}

	for _, in := range []any{nil, map[string]any{}, 1, true, "foo"} {
		_, err := s.Validate(in)
		iss := mustIssues(t, err)
		if len(iss) != 1 || iss[0].Code != okschema.CodeInvalidType {
			t.Fatalf("Validate(%v): expected single invalid_type, got %v", in, iss)
		}
	}
}

func TestArray_OptionalAndNullable(t *testing.T) {
	out, ok, iss := g.Array().Optional().ValidateAt("", nil, false)
	if out != nil || ok || len(iss) > 0 {
		t.Fatalf("optional absent: got out=%v ok=%v iss=%v", out, ok, iss)
	}

	// null bypasses element validation entirely
	v, err := g.Array().Of(g.Integer()).Nullable().Validate(nil)
	if err != nil || v != nil {
		t.Fatalf("nullable null: got v=%v err=%v", v, err)
	}
}

func TestArray_Lengths(t *testing.T) {
	_, err := g.Array().MinLength(1).Validate([]any{})
	iss := mustIssues(t, err)
	if len(iss) != 1 || iss[0].Code != okschema.CodeTooShort {
		t.Fatalf("expected too_short, got %v", iss)
	}

	_, err = g.Array().MaxLength(1).Validate([]any{1, 2})
	iss = mustIssues(t, err)
	if len(iss) != 1 || iss[0].Code != okschema.CodeTooLong {
		t.Fatalf("expected too_long, got %v", iss)
	}

	if _, err := g.Array().Length(2).Validate([]any{1, 2}); err != nil {
		t.Fatalf("exact length: %v", err)
	}
}

func TestArray_OfValidatesEveryElement(t *testing.T) {
	s := g.Array().Of(g.Integer())

	// every element coerces, in index order
	v, err := s.Validate([]any{1, "2", 3.0})
	if err != nil {
		t.Fatalf("coerced elements: %v", err)
	}
	if !reflect.DeepEqual(v, []any{int64(1), int64(2), int64(3)}) {
		t.Fatalf("coerced elements: got %v", v)
	}

	// failures are keyed by index; passing indices are absent from the error
	_, err = s.Validate([]any{"foo", 2, "bar"})
	iss := mustIssues(t, err)
	if len(iss) != 2 {
		t.Fatalf("expected two issues, got %v", iss)
	}
	if !hasIssue(iss, "[0]", okschema.CodeInvalidType) || !hasIssue(iss, "[2]", okschema.CodeInvalidType) {
		t.Fatalf("expected issues at [0] and [2], got %v", iss)
	}
	if hasIssue(iss, "[1]", okschema.CodeInvalidType) {
		t.Fatalf("index 1 passed, must not appear: %v", iss)
	}
}

func TestArray_EmptyWithElementSchema(t *testing.T) {
	v, err := g.Array().Of(g.Integer()).Validate([]any{})
	if err != nil {
		t.Fatalf("empty: %v", err)
	}
	if !reflect.DeepEqual(v, []any{}) {
		t.Fatalf("empty: got %v", v)
	}
}

func TestArray_NestedPaths(t *testing.T) {
	s := g.Array().Of(g.Array().Of(g.Integer()))
	_, err := s.Validate([]any{[]any{1, "x"}})
	iss := mustIssues(t, err)
	if len(iss) != 1 || iss[0].Path != "[0][1]" {
		t.Fatalf("expected issue at [0][1], got %v", iss)
	}
}

// A failing container-level test short-circuits element validation: the
// container produced no value, so elements are never visited.
func TestArray_ContainerFailureSkipsElements(t *testing.T) {
	s := g.Array().MinLength(3).Of(g.Integer())
	_, err := s.Validate([]any{"foo"})
	iss := mustIssues(t, err)
	if len(iss) != 1 || iss[0].Code != okschema.CodeTooShort {
		t.Fatalf("expected only the container too_short, got %v", iss)
	}
}

func TestArray_ElementTestFailures(t *testing.T) {
	s := g.Array().Of(g.Integer().Min(10))
	_, err := s.Validate([]any{5, 12, 3})
	iss := mustIssues(t, err)
	if len(iss) != 2 {
		t.Fatalf("expected two issues, got %v", iss)
	}
	if !hasIssue(iss, "[0]", okschema.CodeTooSmall) || !hasIssue(iss, "[2]", okschema.CodeTooSmall) {
		t.Fatalf("expected too_small at [0] and [2], got %v", iss)
	}
}
