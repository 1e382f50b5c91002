package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tarjama/internal/tui/theme"
)

// gutterWidth is the width of the cursor column left of every row.
const gutterWidth = 2

// Styles holds the lipgloss styles for the reader chrome, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	TitleStyle  lipgloss.Style
	CursorStyle lipgloss.Style
	GutterStyle lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	EmptyStyle  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		colorBg: p.Bg,

		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			PaddingLeft(1),
		CursorStyle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		GutterStyle: lipgloss.NewStyle().
			Width(gutterWidth),
		StatusStyle: lipgloss.NewStyle().
			Foreground(p.Accent).
			PaddingLeft(1),
		ErrorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d14343")).
			Bold(true).
			PaddingLeft(1),
		HelpStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			PaddingLeft(1),
		EmptyStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Italic(true).
			PaddingLeft(gutterWidth),
	}
}
