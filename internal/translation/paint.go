package translation

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Painter turns bound views into terminal text.
type Painter struct {
	translator       lipgloss.Color
	verseNumber      lipgloss.Color
	verseNumberNight lipgloss.Color
}

// NewPainter creates a painter whose template defaults come from res.
func NewPainter(res Resources) *Painter {
	if res == (Resources{}) {
		res = DefaultResources()
	}
	return &Painter{
		translator:       lipgloss.Color(res.Translator),
		verseNumber:      lipgloss.Color(res.VerseNumber),
		verseNumberNight: lipgloss.Color(res.VerseNumberNight),
	}
}

// Paint renders v at the given width. baseSize is the snapshot font size;
// labels sized above it are drawn bold since a terminal cannot scale glyphs.
// A width of zero or less leaves lines unwrapped.
func (p *Painter) Paint(v *View, width int, baseSize int) string {
	switch slot := v.Slot.(type) {
	case *Label:
		return p.paintLabel(v.Template, slot, width, baseSize)
	case *Divider:
		return p.paintDivider(slot, width)
	case *VerseNumber:
		return p.paintVerseNumber(slot, width)
	default:
		return ""
	}
}

func (p *Painter) paintLabel(t Template, l *Label, width int, baseSize int) string {
	style := lipgloss.NewStyle()
	if width > 0 {
		style = style.Width(width)
	}

	switch t {
	case TemplateHeader:
		style = style.Bold(true).Align(lipgloss.Center)
	case TemplateTranslator:
		style = style.Italic(true).Foreground(p.translator)
	case TemplateArabic:
		if l.Shaping {
			style = style.Align(lipgloss.Right)
		}
	}

	if l.Color != "" {
		style = style.Foreground(lipgloss.Color(l.Color))
	}
	if l.Background != "" {
		style = style.Background(lipgloss.Color(l.Background))
	}
	if l.Size > float64(baseSize) {
		style = style.Bold(true)
	}

	return style.Render(l.Text)
}

func (p *Painter) paintDivider(d *Divider, width int) string {
	if !d.ShowLine || width <= 0 {
		return ""
	}
	style := lipgloss.NewStyle()
	if d.Color != "" {
		style = style.Foreground(lipgloss.Color(d.Color))
	}
	return style.Render(strings.Repeat("─", width))
}

func (p *Painter) paintVerseNumber(n *VerseNumber, width int) string {
	color := p.verseNumber
	if n.NightMode {
		color = p.verseNumberNight
	}
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1)
	if width > 1 {
		badge = badge.Width(width - badge.GetHorizontalBorderSize())
	}
	return badge.Render(n.Text)
}
