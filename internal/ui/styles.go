// Package ui holds the terminal palette and output-mode detection shared by
// the human-readable CLI output.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
	warnMark  = "[??]"
)

// Theme is a set of styles for one output mode.
type Theme struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Dim     lipgloss.Style
	OK      lipgloss.Style
	Fail    lipgloss.Style
	Warn    lipgloss.Style
}

// Styled returns the colored theme used on terminals.
func Styled() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue),
		Dim: lipgloss.NewStyle().
			Foreground(colorDim),
		OK: lipgloss.NewStyle().
			Foreground(colorGreen),
		Fail: lipgloss.NewStyle().
			Foreground(colorRed),
		Warn: lipgloss.NewStyle().
			Foreground(colorYellow),
	}
}

// Plain returns a theme whose styles render text unchanged.
func Plain() Theme {
	s := lipgloss.NewStyle()
	return Theme{Title: s, Section: s, Dim: s, OK: s, Fail: s, Warn: s}
}

// Mark returns a status marker for ok.
func (t Theme) Mark(ok bool) string {
	if ok {
		return t.OK.Render(checkMark)
	}
	return t.Fail.Render(crossMark)
}

// WarnMark returns the marker for optional items that are missing.
func (t Theme) WarnMark() string {
	return t.Warn.Render(warnMark)
}
