package translation

import "fmt"

// Settings are the reader preferences a Snapshot is derived from.
type Settings struct {
	FontSize        int
	NightMode       bool
	NightBrightness int
}

// Resources are the resource colors the host supplies for theming rows.
// Color values are hex strings.
type Resources struct {
	TranslationText     string // Translation body in day mode
	ArabicText          string // Arabic and basmallah in day mode
	Divider             string // Spacer rule in day mode
	SuraHeader          string // Header background in day mode
	SuraHeaderNight     string // Header background in night mode
	SuraHeaderText      string // Header title on SuraHeader
	SuraHeaderTextNight string // Header title on SuraHeaderNight
	Translator          string
	VerseNumber         string
	VerseNumberNight    string
}

// DefaultResources returns the colors used when the host supplies none.
func DefaultResources() Resources {
	return Resources{
		TranslationText:     "#333333",
		ArabicText:          "#000000",
		Divider:             "#c7c7c7",
		SuraHeader:          "#d4e6d5",
		SuraHeaderNight:     "#1e3a2b",
		SuraHeaderText:      "#1f2328",
		SuraHeaderTextNight: "#ffffff",
		Translator:          "#6e7781",
		VerseNumber:         "#0b6e4f",
		VerseNumberNight:    "#7fc8a9",
	}
}

// Snapshot is the color and size configuration rows are bound with.
type Snapshot struct {
	FontSize            int
	NightMode           bool
	TextColor           string
	ArabicTextColor     string
	DividerColor        string
	SuraHeaderColor     string
	SuraHeaderTextColor string
}

// NewSnapshot derives a Snapshot from settings and resource colors.
// Zero Resources fall back to DefaultResources.
//
// In night mode all text and the divider share one gray at the configured
// brightness. In day mode every color comes from the resources.
func NewSnapshot(s Settings, res Resources) Snapshot {
	if res == (Resources{}) {
		res = DefaultResources()
	}

	snap := Snapshot{
		FontSize:  s.FontSize,
		NightMode: s.NightMode,
	}

	if s.NightMode {
		gray := nightGray(s.NightBrightness)
		snap.TextColor = gray
		snap.ArabicTextColor = gray
		snap.DividerColor = gray
		snap.SuraHeaderColor = res.SuraHeaderNight
		snap.SuraHeaderTextColor = res.SuraHeaderTextNight
		return snap
	}

	snap.TextColor = res.TranslationText
	snap.DividerColor = res.Divider
	snap.ArabicTextColor = res.ArabicText
	snap.SuraHeaderColor = res.SuraHeader
	snap.SuraHeaderTextColor = res.SuraHeaderText
	return snap
}

// nightGray returns the gray with all three channels at level, clamped to 0-255.
func nightGray(level int) string {
	level = max(0, min(level, 255))
	return fmt.Sprintf("#%02x%02x%02x", level, level, level)
}
