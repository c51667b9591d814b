package vttskema

import (
	"context"
	"fmt"
)

// Variant is the sub-schema descriptor a polymorphic object field delegates
// to once a discriminator resolves. Implementations own the cleaning,
// validation, and construction semantics of one concrete data shape.
type Variant interface {
	// CleanData fills defaults and coerces data, returning a new map. It must
	// not mutate data in place.
	CleanData(ctx context.Context, data map[string]any, opt CleanOpt) (map[string]any, error)

	// ValidateData checks cleaned data.
	ValidateData(ctx context.Context, data map[string]any) error

	// New constructs the typed instance for data, bound to parent.
	New(ctx context.Context, data map[string]any, parent any) (any, error)
}

// Registry maps discriminator tags to Variants. It is constructed explicitly
// and injected into the fields that consult it; there is no ambient global.
//
// Lifecycle: register every variant during process start-up, call Freeze, and
// only then start processing entity data. A frozen registry is read-only and
// safe to share, and Resolve returns stable results for the rest of the
// process lifetime.
type Registry struct {
	variants map[string]Variant
	frozen   bool
}

// NewRegistry returns an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{variants: make(map[string]Variant)}
}

// Register binds tag to v. Registering a duplicate tag, a nil variant, or
// registering after Freeze is a configuration error.
func (r *Registry) Register(tag string, v Variant) error {
	if r.frozen {
		return fmt.Errorf("vttskema: registry is frozen; cannot register %q", tag)
	}
	if tag == "" {
		return fmt.Errorf("vttskema: registry tag must not be empty")
	}
	if v == nil {
		return fmt.Errorf("vttskema: nil variant for tag %q", tag)
	}
	if _, dup := r.variants[tag]; dup {
		return fmt.Errorf("vttskema: duplicate registry tag %q", tag)
	}
	r.variants[tag] = v
	return nil
}

// Freeze marks the registry read-only. Idempotent.
func (r *Registry) Freeze() { r.frozen = true }

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool { return r.frozen }

// Resolve is a pure lookup; it reports false for unknown or empty tags. An
// unknown tag is not an error: callers fall back to opaque passthrough so
// data for extension types not currently installed survives round-trips.
func (r *Registry) Resolve(tag string) (Variant, bool) {
	if r == nil || tag == "" {
		return nil, false
	}
	v, ok := r.variants[tag]
	return v, ok
}

// Tags returns the registered discriminator tags in unspecified order.
func (r *Registry) Tags() []string {
	out := make([]string, 0, len(r.variants))
	for tag := range r.variants {
		out = append(out, tag)
	}
	return out
}
