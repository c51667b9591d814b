package dsl_test

import (
	"context"
	"testing"

	vttskema "github.com/lorewild/vttskema"
	g "github.com/lorewild/vttskema/dsl"
)

func TestNewMapping_NilChild(t *testing.T) {
	_, err := g.NewMapping[int](nil)
	iss, ok := vttskema.AsIssues(err)
	if !ok || iss[0].Code != vttskema.CodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("Mapping must panic on nil child")
		}
	}()
	g.Mapping[int](nil)
}

func TestMapping_InitialKeys(t *testing.T) {
	ctx := context.Background()
	f := g.Mapping[int](g.Int().Default(30), g.WithInitialKeys[int]("walk", "fly"))

	got := f.InitialValue(ctx)
	if len(got) != 2 || got["walk"] != 30 || got["fly"] != 30 {
		t.Fatalf("unexpected initial value: %#v", got)
	}
}

func TestMapping_InitialKeys_Seed(t *testing.T) {
	ctx := context.Background()
	f := g.Mapping[int](g.Int().Default(30),
		g.WithInitialKeys[int]("walk", "fly"),
		g.WithKeySeed[int](func(key string, v int) int {
			if key == "fly" {
				return 0
			}
			return v
		}),
	)

	got := f.InitialValue(ctx)
	if got["walk"] != 30 || got["fly"] != 0 {
		t.Fatalf("unexpected seeded value: %#v", got)
	}
}

func TestMapping_DeclaredInitialWinsOverKeys(t *testing.T) {
	ctx := context.Background()
	f := g.Mapping[int](g.Int(),
		g.WithInitial(map[string]int{"swim": 10}),
		g.WithInitialKeys[int]("walk"),
	)

	got := f.InitialValue(ctx)
	if len(got) != 1 || got["swim"] != 10 {
		t.Fatalf("declared initial must win: %#v", got)
	}
}

func TestMapping_CleanKeepsKeys(t *testing.T) {
	ctx := context.Background()
	f := g.Mapping[int](g.Int())

	raw := map[string]any{"a": "3", "b": "bad"}
	cv, err := f.Clean(ctx, raw, vttskema.CleanOpt{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := cv.(map[string]any)
	if m["a"] != 3 || m["b"] != "bad" {
		t.Fatalf("unexpected cleaned mapping: %#v", m)
	}
	if raw["a"] != "3" {
		t.Fatalf("clean must not mutate its input")
	}
}

func TestMapping_ValidateAggregates(t *testing.T) {
	ctx := context.Background()
	f := g.Mapping[int](g.Int())

	err := f.Validate(ctx, map[string]any{"a": 3, "b": "bad", "c": 1})
	iss, ok := vttskema.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got: %v", err)
	}
	byKey := iss.ByKey()
	if len(byKey) != 1 {
		t.Fatalf("expected exactly one failing key, got: %v", byKey)
	}
	if len(byKey["b"]) != 1 || byKey["b"][0].Code != vttskema.CodeInvalidType {
		t.Fatalf("expected invalid_type under /b, got: %v", byKey)
	}

	if err := f.Validate(ctx, map[string]any{}); err != nil {
		t.Fatalf("empty mapping must be valid: %v", err)
	}
}

func TestMapping_ValidateNonObject(t *testing.T) {
	ctx := context.Background()
	f := g.Mapping[int](g.Int())

	err := f.Validate(ctx, "nope")
	iss, ok := vttskema.AsIssues(err)
	if !ok || iss[0].Code != vttskema.CodeInvalidType {
		t.Fatalf("expected invalid_type, got: %v", err)
	}
}

func TestMapping_Initialize(t *testing.T) {
	ctx := context.Background()
	f := g.Mapping[int](g.Int())
	parent := &struct{}{}

	raw := map[string]any{"walk": 20, "fly": "40"}
	got, err := f.Initialize(ctx, raw, parent)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["walk"] != 20 || got["fly"] != 40 {
		t.Fatalf("unexpected mapping: %#v", got)
	}
	if raw["fly"] != "40" {
		t.Fatalf("initialize must not mutate its input")
	}

	// absent raw value passes through
	none, err := f.Initialize(ctx, nil, parent)
	if err != nil || none != nil {
		t.Fatalf("nil must initialize to nil, got %#v err=%v", none, err)
	}

	if _, err := f.Initialize(ctx, map[string]any{"a": "bad"}, parent); err == nil {
		t.Fatalf("expected error for uncoercible entry")
	}
}

// Scenario from the data model: mapping over an integer leaf, mixed input.
func TestMapping_CleanThenValidateScenario(t *testing.T) {
	ctx := context.Background()
	f := g.Mapping[int](g.Int())

	cv, err := f.Clean(ctx, map[string]any{"a": "3", "b": "bad"}, vttskema.CleanOpt{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	err = f.Validate(ctx, cv)
	iss, ok := vttskema.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got: %v", err)
	}
	byKey := iss.ByKey()
	if len(byKey) != 1 || len(byKey["b"]) != 1 {
		t.Fatalf("expected /b only, got: %v", byKey)
	}
}
