// Package cli implements the funffi command surface: validating callback
// manifests against the native type registry and listing registered types.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/funvibe/funffi/internal/manifest"
	"github.com/funvibe/funffi/internal/signature"
	"github.com/funvibe/funffi/internal/types"

	"github.com/google/uuid"
)

// Runner carries the dependencies of one CLI invocation. Tests supply their
// own writer, registry, and platform.
type Runner struct {
	Out      io.Writer
	Color    bool
	Registry *types.Registry
	Platform signature.Platform
}

// NewRunner returns a Runner bound to stdout defaults.
func NewRunner(out io.Writer) *Runner {
	return &Runner{
		Out:      out,
		Color:    StdoutColor(),
		Registry: types.Default(),
		Platform: signature.Host(),
	}
}

// Check validates every callback in the manifest at path. Each entry prints
// one line: its status, name, and on success the canonical signature form.
// Unavailable signatures are skipped, not failed — the platform simply
// cannot represent them. The exit code is 0 unless at least one entry is
// invalid or the manifest itself cannot be read.
func (r *Runner) Check(path string) int {
	f, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(r.Out, "error: %s\n", err)
		return 1
	}

	fmt.Fprintf(r.Out, "report %s: %s\n", uuid.New(), path)

	failed := 0
	skipped := 0
	for _, cb := range f.Callbacks {
		ret, params, err := cb.Resolve(r.Registry)
		if err != nil {
			fmt.Fprintf(r.Out, "%s %s: %s\n", paint(r.Color, ansiRed, "fail"), cb.Name, err)
			failed++
			continue
		}

		desc, err := signature.NewOn(r.Platform, ret, params)
		switch {
		case err == nil:
			fmt.Fprintf(r.Out, "%s %s: %s\n", paint(r.Color, ansiGreen, "ok"), cb.Name, desc)
		case errors.Is(err, signature.ErrUnavailable):
			fmt.Fprintf(r.Out, "%s %s: %s\n", paint(r.Color, ansiYellow, "skip"), cb.Name, err)
			skipped++
		default:
			fmt.Fprintf(r.Out, "%s %s: %s\n", paint(r.Color, ansiRed, "fail"), cb.Name, err)
			failed++
		}
	}

	fmt.Fprintf(r.Out, "%d callbacks, %d failed, %d skipped\n", len(f.Callbacks), failed, skipped)
	if failed > 0 {
		return 1
	}
	return 0
}

// Types lists the registered type names with their tags and layout.
func (r *Runner) Types() int {
	for _, name := range r.Registry.Names() {
		t, ok := r.Registry.Lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintf(r.Out, "%-10s %-8s size=%d align=%d\n", name, t.Tag(), t.Size(), t.Alignment())
	}
	return 0
}
