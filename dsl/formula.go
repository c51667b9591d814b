package dsl

import (
	"context"
	"strings"

	vttskema "github.com/lorewild/vttskema"
	"github.com/lorewild/vttskema/dice"
	"github.com/lorewild/vttskema/i18n"
)

// FormulaField is a string leaf constrained to parse as a roll expression.
// Formulas are validated by a dry-run evaluation and never stored in
// evaluated form; the empty string is treated as unset.
type FormulaField struct {
	def           string
	deterministic bool
	roller        dice.Roller
}

var _ vttskema.Field[string] = FormulaField{}

// Formula returns a formula field backed by a random roller for dry-run
// evaluation of non-deterministic expressions.
func Formula() FormulaField { return FormulaField{roller: dice.NewRandomRoller()} }

// Deterministic returns a copy of the field that rejects dice terms and
// requires the expression to evaluate under the safe arithmetic-only
// evaluator.
func (f FormulaField) Deterministic() FormulaField { f.deterministic = true; return f }

// Default returns a copy of the field with a declared default.
func (f FormulaField) Default(v string) FormulaField { f.def = v; return f }

// WithRoller returns a copy of the field using r for dry-run evaluation.
func (f FormulaField) WithRoller(r dice.Roller) FormulaField { f.roller = r; return f }

func (f FormulaField) Clean(ctx context.Context, v any, _ vttskema.CleanOpt) (any, error) {
	if v == nil {
		return f.def, nil
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s), nil
	}
	return v, nil
}

func (f FormulaField) Validate(ctx context.Context, v any) error {
	s, ok := v.(string)
	if !ok {
		return vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected formula string"}}
	}
	if s == "" {
		return nil
	}
	expr, err := dice.Parse(s)
	if err != nil {
		return vttskema.Issues{{
			Path:    "/",
			Code:    vttskema.CodeFormulaInvalid,
			Message: i18n.T(vttskema.CodeFormulaInvalid, map[string]string{"formula": s}),
			Cause:   err,
			Params:  map[string]any{"formula": s},
		}}
	}
	if f.deterministic {
		if !expr.Deterministic() {
			return vttskema.Issues{{
				Path:    "/",
				Code:    vttskema.CodeFormulaDice,
				Message: i18n.T(vttskema.CodeFormulaDice, map[string]string{"formula": s}),
				Params:  map[string]any{"formula": s},
			}}
		}
		// Safe evaluation: no dice terms remain, so no roller is consulted.
		if _, err := expr.Eval(nil, nil); err != nil {
			return vttskema.Issues{{
				Path:    "/",
				Code:    vttskema.CodeFormulaInvalid,
				Message: i18n.T(vttskema.CodeFormulaInvalid, map[string]string{"formula": s}),
				Cause:   err,
				Params:  map[string]any{"formula": s},
			}}
		}
		return nil
	}
	// Evaluate once to confirm the expression is well-formed; the numeric
	// result is discarded.
	if _, err := expr.Eval(f.roller, nil); err != nil {
		return vttskema.Issues{{
			Path:    "/",
			Code:    vttskema.CodeFormulaInvalid,
			Message: i18n.T(vttskema.CodeFormulaInvalid, map[string]string{"formula": s}),
			Cause:   err,
			Params:  map[string]any{"formula": s},
		}}
	}
	return nil
}

func (f FormulaField) Initialize(ctx context.Context, v any, _ any) (string, error) {
	if v == nil {
		return f.def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected formula string"}}
	}
	return s, nil
}

func (f FormulaField) InitialValue(ctx context.Context) string { return f.def }
