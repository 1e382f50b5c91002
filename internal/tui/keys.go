package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tarjama/internal/config"
	"github.com/javiermolinar/tarjama/internal/quran"
	"github.com/javiermolinar/tarjama/internal/tui/commands"
)

// Brightness step for night mode text.
const brightnessStep = 15

// KeyMap defines the reader key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextSura key.Binding
	PrevSura key.Binding
	Click    key.Binding
	Night    key.Binding
	Bigger   key.Binding
	Smaller  key.Binding
	Brighter key.Binding
	Dimmer   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d", " "), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		NextSura: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next sura")),
		PrevSura: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev sura")),
		Click:    key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter", "copy verse")),
		Night:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "night")),
		Bigger:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "size")),
		Smaller:  key.NewBinding(key.WithKeys("-", "_")),
		Brighter: key.NewBinding(key.WithKeys("b"), key.WithHelp("b/B", "brightness")),
		Dimmer:   key.NewBinding(key.WithKeys("B")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.NextSura, k.PrevSura, k.Click, k.Night, k.Bigger, k.Brighter, k.Quit}
}

// HelpText renders bindings as "key desc" pairs.
func HelpText(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(max(1, m.bodyHeight()/2))
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-max(1, m.bodyHeight()/2))
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-m.renderer.RowCount())
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(m.renderer.RowCount())

	case key.Matches(msg, m.keys.NextSura):
		if m.sura < quran.SuraCount {
			return m.loadSura(m.sura+1, 0, 0)
		}
	case key.Matches(msg, m.keys.PrevSura):
		if m.sura > 1 {
			return m.loadSura(m.sura-1, 0, 0)
		}

	case key.Matches(msg, m.keys.Click):
		return m.clickRow(m.cursor)

	case key.Matches(msg, m.keys.Night):
		m.settings.NightMode = !m.settings.NightMode
		m.applyTheme("night")
	case key.Matches(msg, m.keys.Bigger):
		if m.settings.FontSize < config.MaxFontSize {
			m.settings.FontSize++
			m.applyTheme("font_size")
		}
	case key.Matches(msg, m.keys.Smaller):
		if m.settings.FontSize > config.MinFontSize {
			m.settings.FontSize--
			m.applyTheme("font_size")
		}
	case key.Matches(msg, m.keys.Brighter):
		m.settings.NightBrightness = min(255, m.settings.NightBrightness+brightnessStep)
		m.applyTheme("brightness")
	case key.Matches(msg, m.keys.Dimmer):
		m.settings.NightBrightness = max(0, m.settings.NightBrightness-brightnessStep)
		m.applyTheme("brightness")
	}

	return m, nil
}

func (m Model) loadSura(sura, from, to int) (tea.Model, tea.Cmd) {
	m.loading = true
	return m, commands.LoadSura(m.repo, m.config.Reader.Translations, sura, from, to)
}
