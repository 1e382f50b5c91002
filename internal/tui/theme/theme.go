// Package theme provides color themes for the reader.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/tarjama/internal/translation"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all resource colors for a reader theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgSelection string `toml:"bg_selection"` // Cursor row
	Fg          string `toml:"fg"`           // Chrome foreground
	FgMuted     string `toml:"fg_muted"`     // Footer, hints
	Accent      string `toml:"accent"`       // Title, status

	TranslationText  string `toml:"translation_text"`   // Translation body in day mode
	ArabicText       string `toml:"arabic_text"`        // Arabic and basmallah in day mode
	Translator       string `toml:"translator"`         // Translator name label
	Divider          string `toml:"divider"`            // Spacer rule in day mode
	SuraHeader       string `toml:"sura_header"`        // Header background in day mode
	SuraHeaderNight  string `toml:"sura_header_night"`  // Header background in night mode
	VerseNumber      string `toml:"verse_number"`       // Verse-number badge in day mode
	VerseNumberNight string `toml:"verse_number_night"` // Verse-number badge in night mode
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to light if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "light"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "light" {
			return Load("light")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.TranslationText == "" {
		t.TranslationText = t.Fg
	}
	if t.ArabicText == "" {
		t.ArabicText = Black
	}
	if t.Translator == "" {
		t.Translator = coalesce(t.FgMuted, t.Fg)
	}
	if t.Divider == "" {
		t.Divider = t.FgMuted
	}
	if t.SuraHeader == "" {
		t.SuraHeader = coalesce(t.BgSelection, t.Bg)
	}
	if t.SuraHeaderNight == "" {
		t.SuraHeaderNight = t.SuraHeader
	}
	if t.VerseNumber == "" {
		t.VerseNumber = t.Accent
	}
	if t.VerseNumberNight == "" {
		t.VerseNumberNight = t.VerseNumber
	}
}

// Resources converts t into the resource colors the translation renderer binds rows with.
func (t *Theme) Resources() translation.Resources {
	return translation.Resources{
		TranslationText:     t.TranslationText,
		ArabicText:          t.ArabicText,
		Divider:             t.Divider,
		SuraHeader:          t.SuraHeader,
		SuraHeaderNight:     t.SuraHeaderNight,
		SuraHeaderText:      TextOn(t.SuraHeader, t.Bg, t.Fg),
		SuraHeaderTextNight: TextOn(t.SuraHeaderNight, t.Bg, t.Fg),
		Translator:          t.Translator,
		VerseNumber:         t.VerseNumber,
		VerseNumberNight:    t.VerseNumberNight,
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"light", "dark", "sepia"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
