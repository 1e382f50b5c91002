package view

import "github.com/charmbracelet/lipgloss"

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// FooterHeight is the number of lines RenderFooter produces.
const FooterHeight = 2

// RenderFooter renders the status and help lines.
func RenderFooter(model FooterModel) string {
	status := Line(model.InnerW, model.StatusStyle, model.StatusText)
	help := Line(model.InnerW, model.HelpStyle, model.HelpText)
	return PlaceBox(model.InnerW, FooterHeight, lipgloss.Bottom, status+"\n"+help, model.Bg)
}
