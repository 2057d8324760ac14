// Package types implements the native type system used to describe callback
// signatures: a closed set of native representation tags, the Type contract
// every return/parameter value must satisfy, primitive and aggregate
// implementations, and a registry for lookup by name.
package types

import "math/bits"

// PointerSize is the size in bytes of a native pointer on this platform.
const PointerSize = bits.UintSize / 8

// Type is the contract required of any value usable as a return or parameter
// type in a native signature. Implementations are immutable after
// construction and safe for unsynchronized concurrent use.
type Type interface {
	// Tag returns the native representation category of this type.
	Tag() NativeTag
	// Name returns the display name, e.g. "Int32" or "Pointer".
	Name() string
	// Size returns the size of the type in bytes (0 for void).
	Size() int
	// Alignment returns the natural alignment of the type in bytes.
	Alignment() int
}

// Param is satisfied by types transmissible as a single native argument slot:
// primitives, pointers, and callback descriptors. Aggregates (structs) are
// not Params; they travel by reference or by value under rules outside this
// package.
type Param interface {
	Type
	// NativeParam is a marker method; it carries no behavior.
	NativeParam()
}
