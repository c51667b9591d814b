package dsl_test

import (
	"context"
	"testing"

	vttskema "github.com/lorewild/vttskema"
	g "github.com/lorewild/vttskema/dsl"
)

func TestIdentifier_Validate(t *testing.T) {
	ctx := context.Background()
	f := g.Identifier()

	for _, ok := range []string{"keelboat", "my-id-2", "a", "0th-level", ""} {
		if err := f.Validate(ctx, ok); err != nil {
			t.Fatalf("%q must be valid: %v", ok, err)
		}
	}

	for _, bad := range []string{"My Id", "UPPER", "double--hyphen", "-lead", "trail-", "under_score"} {
		err := f.Validate(ctx, bad)
		iss, found := vttskema.AsIssues(err)
		if !found || iss[0].Code != vttskema.CodeIdentifierFormat {
			t.Fatalf("expected identifier_format for %q, got: %v", bad, err)
		}
		if iss[0].Params["got"] != bad {
			t.Fatalf("issue must carry the offending value: %#v", iss[0])
		}
	}

	err := f.Validate(ctx, 7)
	iss, found := vttskema.AsIssues(err)
	if !found || iss[0].Code != vttskema.CodeInvalidType {
		t.Fatalf("expected invalid_type, got: %v", err)
	}
}

func TestIdentifier_NoCoercion(t *testing.T) {
	ctx := context.Background()
	f := g.Identifier().Default("rowboat")

	cv, err := f.Clean(ctx, "My Id", vttskema.CleanOpt{})
	if err != nil || cv != "My Id" {
		t.Fatalf("clean must not rewrite values, got %#v err=%v", cv, err)
	}
	cv, err = f.Clean(ctx, nil, vttskema.CleanOpt{})
	if err != nil || cv != "rowboat" {
		t.Fatalf("nil must clean to default, got %#v err=%v", cv, err)
	}
	if f.InitialValue(ctx) != "rowboat" {
		t.Fatalf("unexpected initial value")
	}
}
