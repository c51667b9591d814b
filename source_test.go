package vttskema_test

import (
	"encoding/json"
	"testing"

	vttskema "github.com/lorewild/vttskema"
)

func TestDecodeJSON_NumbersPreserved(t *testing.T) {
	m, err := vttskema.DecodeJSON([]byte(`{"crew": 3, "slug": "keelboat"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := m["crew"].(json.Number); !ok {
		t.Fatalf("expected json.Number, got %T", m["crew"])
	}
	if m["slug"] != "keelboat" {
		t.Fatalf("unexpected value: %#v", m)
	}
}

func TestDecodeJSON_ParseError(t *testing.T) {
	_, err := vttskema.DecodeJSON([]byte(`{"crew":`))
	iss, ok := vttskema.AsIssues(err)
	if !ok || iss[0].Code != vttskema.CodeParseError {
		t.Fatalf("expected parse_error, got: %v", err)
	}
}

func TestDecodeYAML(t *testing.T) {
	m, err := vttskema.DecodeYAML([]byte("crew: 3\nmovement:\n  walk: 20\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m["crew"] != 3 {
		t.Fatalf("unexpected crew: %#v", m["crew"])
	}
	mv, ok := m["movement"].(map[string]any)
	if !ok || mv["walk"] != 20 {
		t.Fatalf("unexpected movement: %#v", m["movement"])
	}

	if _, err := vttskema.DecodeYAML([]byte("{bad")); err == nil {
		t.Fatalf("expected yaml parse error")
	}
}

func TestClone_Independence(t *testing.T) {
	src := map[string]any{"nested": map[string]any{"a": "x"}}
	got, ok := vttskema.Clone(src).(map[string]any)
	if !ok {
		t.Fatalf("clone changed shape: %#v", got)
	}
	got["nested"].(map[string]any)["a"] = "mutated"
	if src["nested"].(map[string]any)["a"] != "x" {
		t.Fatalf("clone shares state with original")
	}
	if vttskema.Clone(nil) != nil {
		t.Fatalf("nil must clone to nil")
	}
	if vttskema.CloneMap(nil) != nil {
		t.Fatalf("nil map must clone to nil")
	}
}
