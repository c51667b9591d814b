package vttskema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Clone returns a deep, independent copy of v with no mutable state shared
// with the original. It is the mechanism behind opaque passthrough: data for
// unresolved discriminators is cloned rather than aliased so later edits to
// one entity cannot contaminate another.
//
// v must be a JSON-shaped value bag (maps, slices, strings, numbers, bools,
// nil). Values that cannot round-trip through JSON are returned as-is.
func Clone(v any) any {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return v
	}
	return out
}

// CloneMap is Clone specialized to map value bags. A nil input yields nil.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out, ok := Clone(m).(map[string]any)
	if !ok {
		return m
	}
	return out
}
