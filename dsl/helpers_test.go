package dsl_test

import (
	"testing"

	okschema "github.com/reoring/okschema"
)

// mustIssues asserts err carries Issues and returns them.
func mustIssues(t *testing.T, err error) okschema.Issues {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}
	iss, ok := okschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got %T: %v", err, err)
	}
	if len(iss) == 0 {
		t.Fatalf("expected at least one issue")
	}
	return iss
}

// hasIssue reports whether iss contains an issue with the given path and code.
func hasIssue(iss okschema.Issues, path, code string) bool {
	for _, it := range iss {
		if it.Path == path && it.Code == code {
			return true
		}
	}
	return false
}
