package view

import (
	"fmt"

	"github.com/javiermolinar/tarjama/internal/quran"
)

// Title returns the screen title for a loaded sura.
func Title(sura, from, to int) string {
	if !quran.ValidSura(sura) {
		return "tarjama"
	}
	if from <= 1 && to >= quran.AyahCount(sura) {
		return fmt.Sprintf("%d. %s", sura, quran.SuraName(sura))
	}
	return fmt.Sprintf("%d. %s (%d-%d)", sura, quran.SuraName(sura), from, to)
}

// Progress formats the cursor position as "row/total".
func Progress(cursor, total int) string {
	if total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", cursor+1, total)
}
