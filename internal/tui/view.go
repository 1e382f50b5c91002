package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tarjama/internal/tui/view"
)

// View renders the reader screen.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	if m.bodyHeight() <= 0 || m.rowWidth() <= 0 {
		return "Terminal too small"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.renderBody(),
		view.RenderFooter(m.footerModel()),
	)
	return view.PadLinesWithBackground(content, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderTitle() string {
	title := view.Title(m.sura, m.from, m.to)
	progress := view.Progress(m.cursor, m.renderer.RowCount())
	gap := max(1, m.width-lipgloss.Width(title)-lipgloss.Width(progress)-2)
	return view.Line(m.width, m.styles.TitleStyle, title+strings.Repeat(" ", gap)+progress)
}

func (m Model) renderBody() string {
	body := m.bodyHeight()
	if msg := m.emptyMessage(); msg != "" {
		return view.PlaceBox(m.width, body, lipgloss.Top, m.styles.EmptyStyle.Render(msg), m.styles.colorBg)
	}

	lines := make([]string, 0, body)
	width := m.rowWidth()
	for i := m.offset; i < m.renderer.RowCount() && len(lines) < body; i++ {
		for j, line := range m.cache.Lines(m.renderer, m.painter, i, width) {
			if len(lines) == body {
				break
			}
			gutter := ""
			if i == m.cursor && j == 0 {
				gutter = m.styles.CursorStyle.Render("▌")
			}
			lines = append(lines, m.styles.GutterStyle.Render(gutter)+line)
		}
	}
	return view.PadLinesWithBackground(strings.Join(lines, "\n"), m.width, body, m.styles.colorBg)
}

func (m Model) emptyMessage() string {
	switch {
	case m.initState.NeedsInit:
		return "No verses imported yet. Run: tarjama import arabic FILE"
	case m.loading:
		return "Loading..."
	case m.renderer.RowCount() == 0:
		return "Nothing to show for this sura."
	}
	return ""
}

func (m Model) footerModel() view.FooterModel {
	status := m.statusMsg
	statusStyle := m.styles.StatusStyle
	if m.err != nil {
		statusStyle = m.styles.ErrorStyle
	}
	return view.FooterModel{
		InnerW:      m.width,
		StatusText:  status,
		HelpText:    HelpText(m.keys.ShortHelp()),
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	}
}
