// Package dsl provides the field constructors of vttskema: leaf fields
// (String, Int, Bool), the Identifier and Formula validators, keyed Mapping
// fields, and the discriminator-resolved object fields (TypeObject,
// DataObject). Constructors return immutable value types; chained options
// like Default copy the definition instead of mutating it.
package dsl
