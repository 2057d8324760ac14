package signature

import (
	"errors"
	"fmt"
)

// InvalidArgumentError reports a candidate that failed the shape check at
// construction time: the wrong capability for a return type, a container
// that is not an ordered sequence, or a non-conforming parameter element.
type InvalidArgumentError struct {
	Role  string // "return type", "parameter list", or "parameter"
	Index int    // parameter position, -1 when not positional
	Got   string // actual kind of the offending value
	Want  string // expected capability
}

func (e *InvalidArgumentError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid %s at index %d: got %s, want %s", e.Role, e.Index, e.Got, e.Want)
	}
	return fmt.Sprintf("invalid %s: got %s, want %s", e.Role, e.Got, e.Want)
}

// NewInvalidArgumentError reports a non-positional shape failure.
func NewInvalidArgumentError(role, got, want string) *InvalidArgumentError {
	return &InvalidArgumentError{Role: role, Index: -1, Got: got, Want: want}
}

// NewInvalidParameterError reports a parameter element failing the type
// capability at the given index.
func NewInvalidParameterError(index int, got, want string) *InvalidArgumentError {
	return &InvalidArgumentError{Role: "parameter", Index: index, Got: got, Want: want}
}

// ErrUnavailable is the sentinel for signatures that pass shape validation
// but cannot be represented at the native boundary on this platform. It is
// an expected outcome, not a caller mistake: match it with errors.Is and
// degrade gracefully (e.g. treat the feature as unsupported).
var ErrUnavailable = errors.New("signature not representable on this platform")

// UnavailableError wraps ErrUnavailable with the concrete reason the
// platform gave. Callers that only care about the outcome can keep using
// errors.Is(err, ErrUnavailable); the reason is for diagnostics.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return "signature unavailable: " + e.Reason
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }
