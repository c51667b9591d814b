package dsl

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	vttskema "github.com/lorewild/vttskema"
	"github.com/lorewild/vttskema/i18n"
)

// StringField is a plain string leaf.
type StringField struct{ def string }

var _ vttskema.Field[string] = StringField{}

// String returns the minimal string field.
func String() StringField { return StringField{} }

// Default returns a copy of the field with a declared default.
func (f StringField) Default(v string) StringField { f.def = v; return f }

func (f StringField) Clean(ctx context.Context, v any, _ vttskema.CleanOpt) (any, error) {
	if v == nil {
		return f.def, nil
	}
	return v, nil
}

func (f StringField) Validate(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected string"}}
	}
	return nil
}

func (f StringField) Initialize(ctx context.Context, v any, _ any) (string, error) {
	if v == nil {
		return f.def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected string"}}
	}
	return s, nil
}

func (f StringField) InitialValue(ctx context.Context) string { return f.def }

// BoolField is a plain bool leaf.
type BoolField struct{ def bool }

var _ vttskema.Field[bool] = BoolField{}

// Bool returns the minimal bool field.
func Bool() BoolField { return BoolField{} }

// Default returns a copy of the field with a declared default.
func (f BoolField) Default(v bool) BoolField { f.def = v; return f }

func (f BoolField) Clean(ctx context.Context, v any, _ vttskema.CleanOpt) (any, error) {
	if v == nil {
		return f.def, nil
	}
	return v, nil
}

func (f BoolField) Validate(ctx context.Context, v any) error {
	if _, ok := v.(bool); !ok {
		return vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected boolean"}}
	}
	return nil
}

func (f BoolField) Initialize(ctx context.Context, v any, _ any) (bool, error) {
	if v == nil {
		return f.def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected boolean"}}
	}
	return b, nil
}

func (f BoolField) InitialValue(ctx context.Context) bool { return f.def }

// IntField is an integer leaf. Clean coerces json.Number, integral floats,
// and numeric strings; values that cannot be coerced pass through unchanged
// for Validate to report.
type IntField struct{ def int }

var _ vttskema.Field[int] = IntField{}

// Int returns the minimal integer field.
func Int() IntField { return IntField{} }

// Default returns a copy of the field with a declared default.
func (f IntField) Default(v int) IntField { f.def = v; return f }

func (f IntField) Clean(ctx context.Context, v any, _ vttskema.CleanOpt) (any, error) {
	if v == nil {
		return f.def, nil
	}
	if n, ok := coerceInt(v); ok {
		return n, nil
	}
	return v, nil
}

func (f IntField) Validate(ctx context.Context, v any) error {
	if _, ok := v.(int); !ok {
		return vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected integer"}}
	}
	return nil
}

func (f IntField) Initialize(ctx context.Context, v any, _ any) (int, error) {
	if v == nil {
		return f.def, nil
	}
	n, ok := coerceInt(v)
	if !ok {
		return 0, vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected integer"}}
	}
	return n, nil
}

func (f IntField) InitialValue(ctx context.Context) int { return f.def }

func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case float64:
		if math.Trunc(t) == t {
			return int(t), true
		}
		return 0, false
	case json.Number:
		if i64, err := t.Int64(); err == nil {
			return int(i64), true
		}
		return 0, false
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return i, true
		}
		return 0, false
	default:
		return 0, false
	}
}
