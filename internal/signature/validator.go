package signature

import (
	"fmt"

	"github.com/funvibe/funffi/internal/types"

	"github.com/google/uuid"
)

// Seq is the ordered, indexable, sized sequence capability accepted for the
// parameter candidate container. Plain []types.Type and []any values are
// adapted automatically by New; anything else must implement Seq itself.
type Seq interface {
	Len() int
	At(i int) any
}

type typeSeq []types.Type

func (s typeSeq) Len() int     { return len(s) }
func (s typeSeq) At(i int) any { return s[i] }

type anySeq []any

func (s anySeq) Len() int     { return len(s) }
func (s anySeq) At(i int) any { return s[i] }

// New validates a candidate return type and candidate parameter container
// against the host platform and returns the immutable Descriptor.
//
// Checks run in order and stop at the first violation, each reported as an
// *InvalidArgumentError naming the offending value's actual kind:
//  1. ret must satisfy types.Type.
//  2. params must be a Seq, []types.Type, or []any (any length, including
//     zero).
//  3. every element of params, scanned in order, must satisfy types.Type.
//
// Only shape is validated here; whether a struct type is sensibly laid out
// is the type's own construction-time concern. After shape validation the
// host capability table is consulted once: an unrepresentable signature
// yields an *UnavailableError matching ErrUnavailable, which is an expected
// outcome rather than a caller mistake.
//
// On success the Descriptor holds an independent snapshot of the parameter
// sequence; later mutation of the caller's container is invisible to it.
// Construction is synchronous and single-attempt, with no side effects
// beyond allocation.
func New(ret any, params any) (*Descriptor, error) {
	return NewOn(Host(), ret, params)
}

// NewOn is New with an explicit platform capability table. Tests and
// cross-platform tooling use it to validate signatures for targets other
// than the host.
func NewOn(p Platform, ret any, params any) (*Descriptor, error) {
	rt, ok := ret.(types.Type)
	if !ok {
		return nil, NewInvalidArgumentError("return type", kindOf(ret), "native type")
	}

	seq, serr := asSeq(params)
	if serr != nil {
		return nil, serr
	}

	n := seq.Len()
	ps := make([]types.Type, n)
	for i := 0; i < n; i++ {
		pt, ok := seq.At(i).(types.Type)
		if !ok {
			return nil, NewInvalidParameterError(i, kindOf(seq.At(i)), "native type")
		}
		ps[i] = pt
	}

	if err := p.Supports(rt, ps); err != nil {
		return nil, &UnavailableError{Reason: err.Error()}
	}

	return &Descriptor{id: uuid.New(), ret: rt, params: ps, arity: n}, nil
}

func asSeq(params any) (Seq, *InvalidArgumentError) {
	switch s := params.(type) {
	case Seq:
		return s, nil
	case []types.Type:
		return typeSeq(s), nil
	case []any:
		return anySeq(s), nil
	default:
		return nil, NewInvalidArgumentError("parameter list", kindOf(params), "ordered sequence")
	}
}

// kindOf names a candidate's actual kind for error messages.
func kindOf(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
