package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractiveTTY reports whether f is a terminal.
func IsInteractiveTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ForFile picks the styled theme for terminals and the plain theme
// otherwise.
func ForFile(f *os.File) Theme {
	if IsInteractiveTTY(f) {
		return Styled()
	}
	return Plain()
}
