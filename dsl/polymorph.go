package dsl

import (
	"context"

	vttskema "github.com/lorewild/vttskema"
	"github.com/lorewild/vttskema/i18n"
)

// TypeObjectField is an object field whose concrete shape is selected by the
// value's own discriminator key (default "type") through an injected
// registry. An unrecognized discriminator is not an error: the field degrades
// to opaque passthrough so data for extension types not currently installed
// survives round-trips losslessly.
type TypeObjectField struct {
	reg *vttskema.Registry
	key string
}

var _ vttskema.Field[any] = TypeObjectField{}

// TypeObject returns a discriminator-resolved object field over reg. A nil
// registry is a configuration error.
func TypeObject(reg *vttskema.Registry) TypeObjectField {
	if reg == nil {
		panic(vttskema.Issues{{
			Path:    "/",
			Code:    vttskema.CodeInvalidArgument,
			Message: i18n.T(vttskema.CodeInvalidArgument, nil),
			Hint:    "registry required",
		}})
	}
	return TypeObjectField{reg: reg, key: "type"}
}

// DiscriminatorKey returns a copy of the field reading the discriminator
// from k instead of "type".
func (f TypeObjectField) DiscriminatorKey(k string) TypeObjectField {
	if k != "" {
		f.key = k
	}
	return f
}

func (f TypeObjectField) resolve(m map[string]any) (vttskema.Variant, bool) {
	tag, _ := m[f.key].(string)
	return f.reg.Resolve(tag)
}

func (f TypeObjectField) Clean(ctx context.Context, v any, opt vttskema.CleanOpt) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		m = map[string]any{}
	}
	if variant, ok := f.resolve(m); ok {
		return variant.CleanData(ctx, m, opt)
	}
	return m, nil
}

func (f TypeObjectField) Validate(ctx context.Context, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected object"}}
	}
	if variant, ok := f.resolve(m); ok {
		return variant.ValidateData(ctx, m)
	}
	return nil
}

func (f TypeObjectField) Initialize(ctx context.Context, v any, parent any) (any, error) {
	if m, ok := v.(map[string]any); ok {
		if variant, ok := f.resolve(m); ok {
			return variant.New(ctx, m, parent)
		}
	}
	return vttskema.Clone(v), nil
}

func (f TypeObjectField) InitialValue(ctx context.Context) any { return map[string]any{} }

// MetadataResolver resolves the concrete sub-schema an owning descriptor
// declares for one of its named slots.
type MetadataResolver interface {
	SchemaFor(field string) (vttskema.Variant, bool)
}

// Slots returns a MetadataResolver backed by a fixed table. A nil table
// resolves nothing, which leaves every DataObject built on it in its
// defaults-merge path until concrete schemas ship.
func Slots(table map[string]vttskema.Variant) MetadataResolver {
	return slotTable{table: table}
}

type slotTable struct{ table map[string]vttskema.Variant }

func (t slotTable) SchemaFor(field string) (vttskema.Variant, bool) {
	v, ok := t.table[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// DataObjectField is an object field whose sub-schema comes from metadata
// attached to an owning descriptor, keyed by the field's own name. It also
// carries a declared default-value object used while no concrete schema is
// registered yet: full cleans merge those defaults under the raw value (raw
// wins on conflicts) instead of passing the raw value through unchanged.
type DataObjectField struct {
	name     string
	meta     MetadataResolver
	defaults map[string]any
}

var _ vttskema.Field[any] = DataObjectField{}

// DataObject returns a metadata-resolved object field named name. An empty
// name or nil resolver is a configuration error.
func DataObject(name string, meta MetadataResolver) DataObjectField {
	if name == "" || meta == nil {
		panic(vttskema.Issues{{
			Path:    "/",
			Code:    vttskema.CodeInvalidArgument,
			Message: i18n.T(vttskema.CodeInvalidArgument, nil),
			Hint:    "field name and metadata resolver required",
		}})
	}
	return DataObjectField{name: name, meta: meta}
}

// Defaults returns a copy of the field with a declared default-value object.
// The defaults are treated as an immutable template; merging always produces
// a new value.
func (f DataObjectField) Defaults(d map[string]any) DataObjectField {
	f.defaults = vttskema.CloneMap(d)
	return f
}

func (f DataObjectField) Clean(ctx context.Context, v any, opt vttskema.CleanOpt) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		m = map[string]any{}
	}
	if variant, ok := f.meta.SchemaFor(f.name); ok {
		return variant.CleanData(ctx, m, opt)
	}
	if opt.Partial || f.defaults == nil {
		return m, nil
	}
	return mergeDefaults(f.defaults, m), nil
}

func (f DataObjectField) Validate(ctx context.Context, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return vttskema.Issues{{Path: "/", Code: vttskema.CodeInvalidType, Message: i18n.T(vttskema.CodeInvalidType, nil), Hint: "expected object"}}
	}
	if variant, ok := f.meta.SchemaFor(f.name); ok {
		return variant.ValidateData(ctx, m)
	}
	return nil
}

func (f DataObjectField) Initialize(ctx context.Context, v any, parent any) (any, error) {
	if m, ok := v.(map[string]any); ok {
		if variant, ok := f.meta.SchemaFor(f.name); ok {
			return variant.New(ctx, m, parent)
		}
	}
	return vttskema.Clone(v), nil
}

func (f DataObjectField) InitialValue(ctx context.Context) any {
	if f.defaults == nil {
		return map[string]any{}
	}
	return vttskema.CloneMap(f.defaults)
}

// mergeDefaults overlays raw onto a clone of defaults; raw values win on key
// conflicts and nested maps merge recursively. Neither input is mutated.
func mergeDefaults(defaults, raw map[string]any) map[string]any {
	out := vttskema.CloneMap(defaults)
	if out == nil {
		out = map[string]any{}
	}
	for k, rv := range raw {
		if dm, ok := out[k].(map[string]any); ok {
			if rm, ok := rv.(map[string]any); ok {
				out[k] = mergeDefaults(dm, rm)
				continue
			}
		}
		out[k] = vttskema.Clone(rv)
	}
	return out
}
