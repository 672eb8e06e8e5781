// Package terminal probes whether output streams are interactive terminals.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Fd is implemented by *os.File.
type Fd interface {
	Fd() uintptr
}

// IsTerminal reports whether f is an interactive terminal, including
// Cygwin and MSYS pseudo terminals.
func IsTerminal(f Fd) bool {
	fd := f.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

// ColorMode reports whether output to f should be highlighted. Colour is
// off when disabled is set or NO_COLOR is present in the environment.
func ColorMode(f Fd, disabled bool) bool {
	if disabled {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(f)
}

// Width returns the terminal width of f, or fallback when it is unknown.
func Width(f Fd, fallback int) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
