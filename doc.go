// Package vttskema provides:
//
// - A typed schema-field engine (Clean/Validate/Initialize/InitialValue) for
//   virtual-tabletop entity data
// - Polymorphic object fields resolved through an injected Registry, with
//   opaque passthrough for unknown discriminators
// - A stable error model via Issues (JSON Pointer, code, message)
// - Wire decoding helpers for JSON and YAML value bags
//
// Design policy:
// - Keep only public contracts in the root package; field constructors live
//   under dsl/, the formula evaluator under dice/, messages under i18n/.
// - Field definitions are immutable after construction and shared read-only
//   across every entity of a given type.
// - A Registry is frozen once, before any entity data is processed.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	raw, err := vttskema.DecodeJSON(data)
//	cleaned, err := field.Clean(ctx, raw, vttskema.CleanOpt{})
//	err = field.Validate(ctx, cleaned)
//	value, err := field.Initialize(ctx, cleaned, parent)
package vttskema
