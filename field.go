package vttskema

import "context"

// CleanOpt bundles cleaning options.
type CleanOpt struct {
	// Partial marks a partial-update pass. Metadata-resolved object fields
	// skip their defaults merge when set, so sparse updates are not padded
	// with template values.
	Partial bool
}

// Field describes one schema slot. A definition is immutable after
// construction and governs only the value bag handed to it; implementations
// never retain or mutate their input.
//
// The lifecycle is Clean -> Validate -> Initialize: Clean coerces raw wire
// data toward the field's canonical shape and fills defaults, Validate checks
// the cleaned data, and Initialize produces the typed in-memory value bound
// to a non-owning parent back-reference.
type Field[T any] interface {
	// Clean coerces v without validating it. Leaf cleaning never fails; a
	// value that cannot be coerced is returned unchanged for Validate to
	// report. Errors raised by a delegated sub-schema propagate unchanged.
	Clean(ctx context.Context, v any, opt CleanOpt) (any, error)

	// Validate checks cleaned data. Fields validating several independent
	// values collect every failure (see Issues.ByKey); leaves fail fast.
	Validate(ctx context.Context, v any) error

	// Initialize produces the typed value for v. parent is kept only as a
	// context back-reference; it never controls the value's lifetime.
	Initialize(ctx context.Context, v any, parent any) (T, error)

	// InitialValue returns the field's declared default.
	InitialValue(ctx context.Context) T
}
