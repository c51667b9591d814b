package dsl

import (
	"context"
	"sort"

	vttskema "github.com/lorewild/vttskema"
	"github.com/lorewild/vttskema/i18n"
)

// MappingField represents a dictionary of arbitrary string keys whose values
// all share one child field definition. Cleaning and validation treat every
// entry independently; keys are never added, removed, or renamed.
type MappingField[V any] struct {
	elem        vttskema.Field[V]
	initial     map[string]V
	initialKeys []string
	seed        func(key string, v V) V
}

// MappingOption configures a MappingField during construction.
type MappingOption[V any] func(*MappingField[V])

// WithInitialKeys declares keys seeded with child defaults when the declared
// initial mapping is empty. Population follows the given order.
func WithInitialKeys[V any](keys ...string) MappingOption[V] {
	return func(f *MappingField[V]) { f.initialKeys = append([]string(nil), keys...) }
}

// WithKeySeed declares a per-key producer applied to the child default while
// seeding initial keys.
func WithKeySeed[V any](fn func(key string, v V) V) MappingOption[V] {
	return func(f *MappingField[V]) { f.seed = fn }
}

// WithInitial declares the mapping's own initial value. The map is copied.
func WithInitial[V any](m map[string]V) MappingOption[V] {
	return func(f *MappingField[V]) {
		f.initial = make(map[string]V, len(m))
		for k, v := range m {
			f.initial[k] = v
		}
	}
}

// NewMapping builds a mapping field over elem. A nil child field definition
// is a configuration error.
func NewMapping[V any](elem vttskema.Field[V], opts ...MappingOption[V]) (MappingField[V], error) {
	if elem == nil {
		return MappingField[V]{}, vttskema.Issues{{
			Path:    "/",
			Code:    vttskema.CodeInvalidArgument,
			Message: i18n.T(vttskema.CodeInvalidArgument, nil),
			Hint:    "child field definition required",
		}}
	}
	f := MappingField[V]{elem: elem}
	for _, o := range opts {
		o(&f)
	}
	return f, nil
}

// Mapping is NewMapping, panicking on misconfiguration.
func Mapping[V any](elem vttskema.Field[V], opts ...MappingOption[V]) MappingField[V] {
	f, err := NewMapping(elem, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

var _ vttskema.Field[map[string]int] = MappingField[int]{}

func (f MappingField[V]) InitialValue(ctx context.Context) map[string]V {
	if len(f.initial) > 0 {
		out := make(map[string]V, len(f.initial))
		for k, v := range f.initial {
			out[k] = v
		}
		return out
	}
	out := make(map[string]V, len(f.initialKeys))
	for _, k := range f.initialKeys {
		v := f.elem.InitialValue(ctx)
		if f.seed != nil {
			v = f.seed(k, v)
		}
		out[k] = v
	}
	return out
}

func (f MappingField[V]) Clean(ctx context.Context, v any, opt vttskema.CleanOpt) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	out := make(map[string]any, len(m))
	for k, ev := range m {
		cv, err := f.elem.Clean(ctx, ev, opt)
		if err != nil {
			return nil, vttskema.RebaseIssues(k, err)
		}
		out[k] = cv
	}
	return out, nil
}

func (f MappingField[V]) Validate(ctx context.Context, v any) error {
	var keys []string
	var at func(k string) any
	switch m := v.(type) {
	case map[string]any:
		keys = sortedKeys(m)
		at = func(k string) any { return m[k] }
	case map[string]V:
		keys = sortedKeys(m)
		at = func(k string) any { return m[k] }
	default:
		return vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected object"}}
	}
	// validate entries in key-sorted order for deterministic error selection
	var iss vttskema.Issues
	for _, k := range keys {
		if err := f.elem.Validate(ctx, at(k)); err != nil {
			iss = vttskema.AppendIssues(iss, vttskema.RebaseIssues(k, err)...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (f MappingField[V]) Initialize(ctx context.Context, v any, parent any) (map[string]V, error) {
	if v == nil {
		return nil, nil
	}
	switch m := v.(type) {
	case map[string]V:
		out := make(map[string]V, len(m))
		for k, ev := range m {
			iv, err := f.elem.Initialize(ctx, ev, parent)
			if err != nil {
				return nil, vttskema.RebaseIssues(k, err)
			}
			out[k] = iv
		}
		return out, nil
	case map[string]any:
		out := make(map[string]V, len(m))
		for k, ev := range m {
			iv, err := f.elem.Initialize(ctx, ev, parent)
			if err != nil {
				return nil, vttskema.RebaseIssues(k, err)
			}
			out[k] = iv
		}
		return out, nil
	default:
		return nil, vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected object"}}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
