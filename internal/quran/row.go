// Package quran holds the verse model, sura metadata, and the row sequence
// shown by the translation reader.
package quran

import "fmt"

// Kind identifies what a row displays.
type Kind int

const (
	KindSuraHeader Kind = iota
	KindBasmallah
	KindQuranText
	KindSpacer
	KindVerseNumber
	KindTranslator
	KindTranslationText
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSuraHeader:
		return "sura_header"
	case KindBasmallah:
		return "basmallah"
	case KindQuranText:
		return "quran_text"
	case KindSpacer:
		return "spacer"
	case KindVerseNumber:
		return "verse_number"
	case KindTranslator:
		return "translator"
	case KindTranslationText:
		return "translation_text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Verse is a single ayah with its Arabic text.
type Verse struct {
	Sura int
	Ayah int
	Text string
}

// Ref returns the "sura:ayah" reference for the verse.
func (v Verse) Ref() string {
	return fmt.Sprintf("%d:%d", v.Sura, v.Ayah)
}

// Row describes one line of the reader. Rows are built once and never mutated.
type Row struct {
	Kind        Kind
	Verse       Verse
	Translator  string // Set on KindTranslator and KindTranslationText rows
	Translation string // Set on KindTranslationText rows
}

// Sura returns the sura the row belongs to.
func (r Row) Sura() int { return r.Verse.Sura }

// Ayah returns the ayah the row belongs to.
func (r Row) Ayah() int { return r.Verse.Ayah }
