package vehicle

import (
	"context"
	"fmt"

	vttskema "github.com/lorewild/vttskema"
	"github.com/lorewild/vttskema/i18n"
)

// RegisterKinds binds the built-in advancement kinds into reg. Call during
// start-up, before freezing the registry.
func RegisterKinds(reg *vttskema.Registry) error {
	if err := reg.Register("size", sizeKind{}); err != nil {
		return fmt.Errorf("vehicle: %w", err)
	}
	if err := reg.Register("trait", traitKind{}); err != nil {
		return fmt.Errorf("vehicle: %w", err)
	}
	return nil
}

// SizeAdvancement grows or shrinks the vehicle's size category.
type SizeAdvancement struct {
	parent any
	Size   string
}

// Parent returns the owning entity this advancement was initialized for.
func (a *SizeAdvancement) Parent() any { return a.parent }

type sizeKind struct{}

func (sizeKind) CleanData(ctx context.Context, data map[string]any, opt vttskema.CleanOpt) (map[string]any, error) {
	out := vttskema.CloneMap(data)
	if out == nil {
		out = map[string]any{}
	}
	if _, ok := out["size"]; !ok && !opt.Partial {
		out["size"] = "med"
	}
	return out, nil
}

func (sizeKind) ValidateData(ctx context.Context, data map[string]any) error {
	if v, ok := data["size"]; ok {
		if _, ok := v.(string); !ok {
			return vttskema.Issues{{Path: "/size", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected string"}}
		}
	}
	return nil
}

func (sizeKind) New(ctx context.Context, data map[string]any, parent any) (any, error) {
	size, _ := data["size"].(string)
	return &SizeAdvancement{parent: parent, Size: size}, nil
}

// TraitAdvancement grants named traits to the vehicle.
type TraitAdvancement struct {
	parent any
	Grants []string
}

// Parent returns the owning entity this advancement was initialized for.
func (a *TraitAdvancement) Parent() any { return a.parent }

type traitKind struct{}

func (traitKind) CleanData(ctx context.Context, data map[string]any, opt vttskema.CleanOpt) (map[string]any, error) {
	out := vttskema.CloneMap(data)
	if out == nil {
		out = map[string]any{}
	}
	if _, ok := out["grants"]; !ok && !opt.Partial {
		out["grants"] = []any{}
	}
	return out, nil
}

func (traitKind) ValidateData(ctx context.Context, data map[string]any) error {
	v, ok := data["grants"]
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return vttskema.Issues{{Path: "/grants", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected array of strings"}}
	}
	var iss vttskema.Issues
	for i, it := range items {
		if _, ok := it.(string); !ok {
			iss = vttskema.AppendIssues(iss, vttskema.Issue{
				Path:    fmt.Sprintf("/grants/%d", i),
				Code:    vttskema.CodeInvalidType,
				Message: i18n.T(vttskema.CodeInvalidType, nil),
				Hint:    "expected string",
			})
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (traitKind) New(ctx context.Context, data map[string]any, parent any) (any, error) {
	var grants []string
	if items, ok := data["grants"].([]any); ok {
		grants = make([]string, 0, len(items))
		for _, it := range items {
			if s, ok := it.(string); ok {
				grants = append(grants, s)
			}
		}
	}
	return &TraitAdvancement{parent: parent, Grants: grants}, nil
}
