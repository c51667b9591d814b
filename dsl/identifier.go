package dsl

import (
	"context"
	"regexp"

	vttskema "github.com/lorewild/vttskema"
	"github.com/lorewild/vttskema/i18n"
)

// identifierRx is the slug grammar: lowercase letters and digits, with
// interior single hyphens.
var identifierRx = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IdentifierField is a string leaf constrained to the slug grammar. No
// coercion is attempted; the empty string is treated as unset.
type IdentifierField struct{ def string }

var _ vttskema.Field[string] = IdentifierField{}

// Identifier returns the identifier field.
func Identifier() IdentifierField { return IdentifierField{} }

// Default returns a copy of the field with a declared default.
func (f IdentifierField) Default(v string) IdentifierField { f.def = v; return f }

func (f IdentifierField) Clean(ctx context.Context, v any, _ vttskema.CleanOpt) (any, error) {
	if v == nil {
		return f.def, nil
	}
	return v, nil
}

func (f IdentifierField) Validate(ctx context.Context, v any) error {
	s, ok := v.(string)
	if !ok {
		return vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected string"}}
	}
	if s == "" {
		return nil
	}
	if !identifierRx.MatchString(s) {
		return vttskema.Issues{{
			Path:    "/",
			Code:    vttskema.CodeIdentifierFormat,
			Message: i18n.T(vttskema.CodeIdentifierFormat, map[string]string{"got": s}),
			Params:  map[string]any{"got": s},
		}}
	}
	return nil
}

func (f IdentifierField) Initialize(ctx context.Context, v any, _ any) (string, error) {
	if v == nil {
		return f.def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected string"}}
	}
	return s, nil
}

func (f IdentifierField) InitialValue(ctx context.Context) string { return f.def }
