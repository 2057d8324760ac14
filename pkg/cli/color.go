package cli

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	colorOnce sync.Once
	colorVal  bool
)

// StdoutColor reports whether stdout wants ANSI colors, detected once.
// Honors the NO_COLOR convention (https://no-color.org/) and TERM=dumb.
func StdoutColor() bool {
	colorOnce.Do(func() {
		colorVal = detectColor()
	})
	return colorVal
}

func detectColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	term := os.Getenv("TERM")
	if term == "dumb" || strings.TrimSpace(term) == "" {
		return false
	}
	return true
}

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func paint(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return code + s + ansiReset
}
