package vttskema_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	vttskema "github.com/lorewild/vttskema"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := vttskema.Issues{
		{Path: "/a", Code: vttskema.CodeInvalidType},
		{Path: "/b", Code: vttskema.CodeRequired},
	}
	got := iss.Error()
	if !strings.Contains(got, "invalid_type at /a") || !strings.Contains(got, "required at /b") {
		t.Fatalf("unexpected summary: %q", got)
	}

	long := vttskema.Issues{
		{Path: "/a", Code: "x"}, {Path: "/b", Code: "x"},
		{Path: "/c", Code: "x"}, {Path: "/d", Code: "x"},
	}
	if !strings.Contains(long.Error(), "(total 4)") {
		t.Fatalf("expected truncation marker, got: %q", long.Error())
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	iss := vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType}}
	wrapped := fmt.Errorf("clean failed: %w", error(iss))

	got, ok := vttskema.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Code != vttskema.CodeInvalidType {
		t.Fatalf("expected issues through wrap, got: %v ok=%v", got, ok)
	}
	if _, ok := vttskema.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
}

func TestRebaseIssues(t *testing.T) {
	child := vttskema.Issues{
		{Path: "/", Code: vttskema.CodeInvalidType},
		{Path: "/size", Code: vttskema.CodeRequired},
	}
	got := vttskema.RebaseIssues("fly", error(child))
	if got[0].Path != "/fly" {
		t.Fatalf("root path not rebased: %q", got[0].Path)
	}
	if got[1].Path != "/fly/size" {
		t.Fatalf("nested path not rebased: %q", got[1].Path)
	}

	plain := vttskema.RebaseIssues("walk", errors.New("boom"))
	if len(plain) != 1 || plain[0].Code != vttskema.CodeParseError || plain[0].Path != "/walk" {
		t.Fatalf("non-Issues error not wrapped: %v", plain)
	}
	if vttskema.RebaseIssues("x", nil) != nil {
		t.Fatalf("nil error must rebase to nil")
	}
}

func TestIssues_ByKey(t *testing.T) {
	iss := vttskema.Issues{
		{Path: "/b", Code: vttskema.CodeInvalidType},
		{Path: "/b/deep", Code: vttskema.CodeRequired},
		{Path: "/c", Code: vttskema.CodeInvalidType},
	}
	byKey := iss.ByKey()
	if len(byKey) != 2 {
		t.Fatalf("expected 2 keys, got: %v", byKey)
	}
	if len(byKey["b"]) != 2 || len(byKey["c"]) != 1 {
		t.Fatalf("unexpected grouping: %v", byKey)
	}
}
