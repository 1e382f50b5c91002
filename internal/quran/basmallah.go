package quran

import "strings"

// ArabicBasmallah is the invocation shown before every sura except 1 and 9.
const ArabicBasmallah = "بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ"

// Spellings of the basmallah found at the start of ayah 1 in common text
// editions (Uthmani, simple with diacritics, simple clean).
var basmallahPrefixes = []string{
	ArabicBasmallah,
	"بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
	"بِسْمِ اللَّهِ الرَّحْمَـٰنِ الرَّحِيمِ",
	"بسم الله الرحمن الرحيم",
}

// HasBasmallah reports whether a sura is preceded by its own basmallah row.
// Sura 1 opens with the basmallah as its first ayah and sura 9 has none.
func HasBasmallah(sura int) bool {
	return ValidSura(sura) && sura != 1 && sura != 9
}

// StripBasmallah removes a leading basmallah from the text of the first ayah
// of a sura that carries one. Any other verse text is returned unchanged.
func StripBasmallah(sura, ayah int, text string) string {
	if ayah != 1 || !HasBasmallah(sura) {
		return text
	}
	for _, prefix := range basmallahPrefixes {
		if strings.HasPrefix(text, prefix) {
			return strings.TrimSpace(text[len(prefix):])
		}
	}
	return text
}
