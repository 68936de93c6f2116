package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme groups the styles used by every table and heading.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Basic    lipgloss.Style
	Entering lipgloss.Style
	Border   lipgloss.Style
}

// newRenderer binds lipgloss to w. Without color every style degrades to
// plain text, which keeps piped output and tests byte-stable.
func newRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	lr := lipgloss.NewRenderer(w)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
	}

	return lr
}

// DefaultTheme builds the theme on lr.
func DefaultTheme(lr *lipgloss.Renderer) Theme {
	return Theme{
		Title:    lr.NewStyle().Bold(true),
		Subtitle: lr.NewStyle().Faint(true),
		Muted:    lr.NewStyle().Faint(true),
		Good:     lr.NewStyle().Foreground(lipgloss.Color("42")),
		Bad:      lr.NewStyle().Foreground(lipgloss.Color("196")),
		Header:   lr.NewStyle().Bold(true).Padding(0, 1),
		Cell:     lr.NewStyle().Padding(0, 1),
		Basic:    lr.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("63")),
		Entering: lr.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("214")),
		Border:   lr.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
