package signature

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/funvibe/funffi/internal/types"
)

// Platform answers whether a callback with the given shape can be
// represented at the native boundary. The check runs once, after shape
// validation; a non-nil error names the first unrepresentable type and
// becomes the reason inside an UnavailableError.
type Platform interface {
	Supports(ret types.Type, params []types.Type) error
}

// hostPlatform is the capability table for the architecture the process is
// running on. Single-slot types are representable everywhere; struct returns
// and struct parameters need first-class aggregate support in the closure
// ABI, which only the 64-bit mainstream targets provide.
type hostPlatform struct {
	arch       string
	aggregates bool
}

var (
	hostOnce sync.Once
	hostVal  *hostPlatform
)

// Host returns the capability table for runtime.GOARCH, built once.
func Host() Platform {
	hostOnce.Do(func() {
		hostVal = newHostPlatform(runtime.GOARCH)
	})
	return hostVal
}

func newHostPlatform(arch string) *hostPlatform {
	p := &hostPlatform{arch: arch}
	switch arch {
	case "amd64", "arm64":
		p.aggregates = true
	}
	return p
}

func (p *hostPlatform) Supports(ret types.Type, params []types.Type) error {
	if !p.aggregates {
		if ret.Tag() == types.STRUCT_TAG {
			return fmt.Errorf("struct return %s not supported on %s", ret.Name(), p.arch)
		}
		for i, t := range params {
			if t.Tag() == types.STRUCT_TAG {
				return fmt.Errorf("struct parameter %s at index %d not supported on %s", t.Name(), i, p.arch)
			}
		}
	}
	return nil
}
