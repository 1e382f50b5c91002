// Package tui provides the terminal user interface for tarjama.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tarjama/internal/config"
	"github.com/javiermolinar/tarjama/internal/quran"
	"github.com/javiermolinar/tarjama/internal/translation"
	"github.com/javiermolinar/tarjama/internal/tui/commands"
	"github.com/javiermolinar/tarjama/internal/tui/theme"
	"github.com/javiermolinar/tarjama/internal/tui/view"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   quran.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   KeyMap

	// Rendering
	renderer *translation.Renderer
	painter  *translation.Painter
	settings translation.Settings
	cache    *RenderCache
	clicks   *[]int // positions reported by the click listener, drained per key

	// State
	sura    int
	from    int
	to      int
	cursor  int // Row index under the cursor
	offset  int // First visible row index
	loading bool

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time
	err        error
	initState  InitState
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithSura sets the sura range loaded on start.
func WithSura(sura, from, to int) ModelOption {
	return func(m *Model) {
		m.sura = sura
		m.from = from
		m.to = to
	}
}

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
	}
}

// New creates a new TUI model.
func New(repo quran.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("light")
	}

	renderer := translation.NewRenderer(translation.WithArabicShaping(cfg.Reader.ArabicShaping))
	cache := NewRenderCache()
	renderer.SetOnDataSetChanged(cache.Invalidate)

	clicks := new([]int)
	renderer.SetOnTranslationClickedListener(func(v *translation.View) {
		*clicks = append(*clicks, v.Position())
	})

	m := &Model{
		repo:     repo,
		config:   cfg,
		theme:    t,
		styles:   NewStyles(t),
		keys:     DefaultKeyMap(),
		renderer: renderer,
		painter:  translation.NewPainter(t.Resources()),
		settings: ReaderSettings(cfg.Reader),
		cache:    cache,
		clicks:   clicks,
		sura:     1,
	}
	m.applyTheme("init")

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// ReaderSettings extracts the renderer settings from the reader config.
func ReaderSettings(cfg config.ReaderConfig) translation.Settings {
	return translation.Settings{
		FontSize:        cfg.FontSize,
		NightMode:       cfg.NightMode,
		NightBrightness: cfg.NightBrightness,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadSura(m.repo, m.config.Reader.Translations, m.sura, m.from, m.to)
}

// applyTheme rebuilds the snapshot from the current settings and hands it to the renderer.
func (m *Model) applyTheme(reason string) {
	snap := translation.NewSnapshot(m.settings, m.theme.Resources())
	m.renderer.SetTheme(snap)
	LogThemeChange(snap, reason)
}

// setRows swaps in a freshly loaded sura.
func (m *Model) setRows(msg commands.SuraLoadedMsg) {
	m.renderer.SetRows(msg.Rows)
	m.cache.Invalidate()
	m.sura, m.from, m.to = msg.Sura, msg.From, msg.To
	m.cursor = 0
	m.offset = 0
	m.loading = false
	LogSuraLoaded(msg.Sura, msg.From, msg.To, len(msg.Rows))
}

// Run starts the TUI.
func Run(repo quran.Repository, cfg *config.Config, opts ...ModelOption) error {
	return RunWithDebug(repo, cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo quran.Repository, cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	ownRepo := false
	if repo == nil {
		state, err := DetectInitState(cfg)
		if err != nil {
			return err
		}
		opts = append(opts, WithInitState(state))
		if !state.NeedsInit {
			repo, err = openRepo(state.DBPath)
			if err != nil {
				return err
			}
			ownRepo = true
		}
	}
	if ownRepo {
		defer func() { _ = repo.Close() }()
	}

	model := New(repo, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// bodyHeight returns the number of lines between the title and the footer.
func (m Model) bodyHeight() int {
	return max(0, m.height-1-view.FooterHeight)
}

// rowWidth returns the width rows are painted at.
func (m Model) rowWidth() int {
	return max(0, m.width-gutterWidth)
}

func (m Model) rowHeight(index int) int {
	return m.cache.Height(m.renderer, m.painter, index, m.rowWidth())
}

// moveCursor moves the cursor by delta rows and scrolls it into view.
func (m *Model) moveCursor(delta int) {
	count := m.renderer.RowCount()
	if count == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), count-1)
	m.ensureCursorVisible()
}

// ensureCursorVisible adjusts offset so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
		return
	}
	body := m.bodyHeight()
	if body <= 0 {
		return
	}
	for m.offset < m.cursor {
		used := 0
		for i := m.offset; i <= m.cursor; i++ {
			used += m.rowHeight(i)
		}
		if used <= body {
			return
		}
		m.offset++
	}
}

// lineToRow maps a screen line to the row painted there, or -1.
func (m Model) lineToRow(y int) int {
	line := y - 1 // title
	if line < 0 || line >= m.bodyHeight() {
		return -1
	}
	for i := m.offset; i < m.renderer.RowCount(); i++ {
		h := m.rowHeight(i)
		if line < h {
			return i
		}
		line -= h
	}
	return -1
}

// clickRow binds a view for the row at index and clicks it. The renderer's
// listener queues the position; queued positions are turned into copy commands.
func (m Model) clickRow(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= m.renderer.RowCount() {
		return m, nil
	}
	m.cursor = index
	m.ensureCursorVisible()

	v := m.renderer.CreateView(m.renderer.ViewKindFor(index))
	m.renderer.BindView(v, index)
	v.Click()

	var cmds []tea.Cmd
	for _, pos := range *m.clicks {
		LogClick(pos, m.renderer.ViewKindFor(pos))
		text := m.verseCopyText(pos)
		if text == "" {
			continue
		}
		cmds = append(cmds, commands.CopyToClipboard(text, m.renderer.Row(pos).Verse.Ref()))
	}
	*m.clicks = (*m.clicks)[:0]

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// verseCopyText collects the Arabic text and translations of the verse the
// row at index belongs to.
func (m Model) verseCopyText(index int) string {
	target := m.renderer.Row(index)
	if target.Kind == quran.KindSuraHeader || target.Kind == quran.KindBasmallah {
		return ""
	}
	key := target.Verse.Key()

	var parts []string
	for i := 0; i < m.renderer.RowCount(); i++ {
		row := m.renderer.Row(i)
		if row.Verse.Key() != key {
			continue
		}
		switch row.Kind {
		case quran.KindQuranText:
			if text := quran.StripBasmallah(row.Sura(), row.Ayah(), row.Verse.Text); text != "" {
				parts = append(parts, text)
			}
		case quran.KindTranslationText:
			if row.Translation != "" {
				parts = append(parts, row.Translation)
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n" + target.Verse.Ref()
}
