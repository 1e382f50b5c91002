package quran

// Key identifies a verse by sura and ayah.
type Key struct {
	Sura int
	Ayah int
}

// Key returns the verse's key.
func (v Verse) Key() Key {
	return Key{Sura: v.Sura, Ayah: v.Ayah}
}

// TranslationSet is the text of one translation over a range of verses.
type TranslationSet struct {
	Translator string
	Texts      map[Key]string
}

// BuildRows lays out the reader rows for verses, in order.
//
// Each verse contributes a verse-number row, its Arabic text, one block per
// translation that covers it, and a trailing spacer. The first ayah of a
// sura is preceded by a header and, where the sura has one, a basmallah.
// Translator rows are only emitted when more than one translation is shown.
func BuildRows(verses []Verse, translations []TranslationSet) []Row {
	showTranslator := len(translations) > 1
	rows := make([]Row, 0, len(verses)*(3+2*len(translations)))

	for _, v := range verses {
		if v.Ayah == 1 {
			rows = append(rows, Row{Kind: KindSuraHeader, Verse: v})
			if HasBasmallah(v.Sura) {
				rows = append(rows, Row{Kind: KindBasmallah, Verse: v})
			}
		}

		rows = append(rows, Row{Kind: KindVerseNumber, Verse: v})
		if v.Text != "" {
			rows = append(rows, Row{Kind: KindQuranText, Verse: v})
		}

		for _, ts := range translations {
			text, ok := ts.Texts[v.Key()]
			if !ok {
				continue
			}
			if showTranslator {
				rows = append(rows, Row{Kind: KindTranslator, Verse: v, Translator: ts.Translator})
			}
			rows = append(rows, Row{
				Kind:        KindTranslationText,
				Verse:       v,
				Translator:  ts.Translator,
				Translation: text,
			})
		}

		rows = append(rows, Row{Kind: KindSpacer, Verse: v})
	}

	return rows
}
