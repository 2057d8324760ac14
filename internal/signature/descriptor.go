// Package signature implements the validation gate between arbitrary caller
// input and native callback machinery. Validation produces an immutable
// Descriptor — arity, ordered parameter types, return type — that trampoline
// generation can consume without re-checking anything.
package signature

import (
	"strings"

	"github.com/funvibe/funffi/internal/types"

	"github.com/google/uuid"
)

// Descriptor is a validated callback signature. It is immutable from the
// moment of construction and safe for unsynchronized concurrent reads: no
// method mutates state and no locks are required. A Descriptor is itself a
// types.Type (a callback is passed as a function pointer, so its tag is
// always POINTER_TAG) and a types.Param, which lets a callback appear as a
// parameter or return type of another callback.
type Descriptor struct {
	id     uuid.UUID
	ret    types.Type
	params []types.Type
	arity  int
}

// ReturnType returns the declared return type.
func (d *Descriptor) ReturnType() types.Type { return d.ret }

// ParameterTypes returns the declared parameter types in order. The result
// is a fresh copy each call; mutating it does not affect the descriptor.
func (d *Descriptor) ParameterTypes() []types.Type {
	out := make([]types.Type, len(d.params))
	copy(out, d.params)
	return out
}

// ParameterType returns the parameter type at index i.
func (d *Descriptor) ParameterType(i int) (types.Type, bool) {
	if i < 0 || i >= len(d.params) {
		return nil, false
	}
	return d.params[i], true
}

// Arity returns the fixed parameter count. Variadic signatures are not
// representable, so this always equals len(ParameterTypes()).
func (d *Descriptor) Arity() int { return d.arity }

// ID returns the correlation id assigned at construction. It identifies
// this descriptor instance in diagnostics; equal signatures built twice get
// distinct ids.
func (d *Descriptor) ID() uuid.UUID { return d.id }

// Tag reports POINTER_TAG: at the boundary a callback travels as a function
// pointer regardless of its own parameter and return types.
func (d *Descriptor) Tag() types.NativeTag { return types.POINTER_TAG }

func (d *Descriptor) Size() int      { return types.PointerSize }
func (d *Descriptor) Alignment() int { return types.PointerSize }
func (d *Descriptor) NativeParam()   {}

// Name returns the canonical rendering, same as String. When a descriptor
// nests inside another signature its whole form appears in place of a type
// name.
func (d *Descriptor) Name() string { return d.String() }

// String returns the canonical form "[ t1, t2 ], r": parameter names
// lower-cased and comma-space separated inside single-space-padded brackets,
// then ", " and the lower-cased return type name. An empty parameter list
// renders as "[  ]" with the padding preserved. Comparison and diagnostic
// tooling depends on this exact form.
func (d *Descriptor) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i, p := range d.params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strings.ToLower(p.Name()))
	}
	sb.WriteString(" ], ")
	sb.WriteString(strings.ToLower(d.ret.Name()))
	return sb.String()
}
