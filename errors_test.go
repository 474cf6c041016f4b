package resmap_test

import (
	"fmt"
	"testing"

	resmap "github.com/resmap/resmap"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := resmap.Issues{
		{Path: "/a", Code: resmap.CodeInvalidType},
		{Path: "/b", Code: resmap.CodeInvalidFormat},
		{Path: "/c", Code: resmap.CodeInvalidDefinition},
		{Path: "/d", Code: resmap.CodeParseError},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if want := "invalid_type at /a"; s[:len(want)] != want {
		t.Fatalf("summary starts with %q, want %q", s, want)
	}
}

func TestAsIssues_UnwrapsWrappedErrors(t *testing.T) {
	iss := resmap.AppendIssues(nil, resmap.Issue{Path: "/x", Code: resmap.CodeInvalidType})
	wrapped := fmt.Errorf("decode payload: %w", error(iss))

	got, ok := resmap.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Path != "/x" {
		t.Fatalf("AsIssues(wrapped) = %v, %v", got, ok)
	}
	if resmap.IsTypeConstraint(wrapped) != true {
		t.Fatalf("IsTypeConstraint should see through wrapping")
	}
}

func TestIsTypeConstraint(t *testing.T) {
	if resmap.IsTypeConstraint(nil) {
		t.Fatalf("nil error is not a type constraint")
	}
	if resmap.IsTypeConstraint(fmt.Errorf("plain")) {
		t.Fatalf("plain error is not a type constraint")
	}
	other := resmap.Issues{{Code: resmap.CodeParseError}}
	if resmap.IsTypeConstraint(other) {
		t.Fatalf("parse_error is not a type constraint")
	}
}
