package quran

import (
	"errors"
	"fmt"
)

// SuraCount is the number of suras in the Quran.
const SuraCount = 114

// ErrInvalidSura is returned for sura numbers outside 1-114.
var ErrInvalidSura = errors.New("invalid sura")

var suraNames = [SuraCount]string{
	"Al-Fatihah", "Al-Baqarah", "Ali 'Imran", "An-Nisa", "Al-Ma'idah",
	"Al-An'am", "Al-A'raf", "Al-Anfal", "At-Tawbah", "Yunus",
	"Hud", "Yusuf", "Ar-Ra'd", "Ibrahim", "Al-Hijr",
	"An-Nahl", "Al-Isra", "Al-Kahf", "Maryam", "Taha",
	"Al-Anbya", "Al-Hajj", "Al-Mu'minun", "An-Nur", "Al-Furqan",
	"Ash-Shu'ara", "An-Naml", "Al-Qasas", "Al-'Ankabut", "Ar-Rum",
	"Luqman", "As-Sajdah", "Al-Ahzab", "Saba", "Fatir",
	"Ya-Sin", "As-Saffat", "Sad", "Az-Zumar", "Ghafir",
	"Fussilat", "Ash-Shuraa", "Az-Zukhruf", "Ad-Dukhan", "Al-Jathiyah",
	"Al-Ahqaf", "Muhammad", "Al-Fath", "Al-Hujurat", "Qaf",
	"Adh-Dhariyat", "At-Tur", "An-Najm", "Al-Qamar", "Ar-Rahman",
	"Al-Waqi'ah", "Al-Hadid", "Al-Mujadila", "Al-Hashr", "Al-Mumtahanah",
	"As-Saf", "Al-Jumu'ah", "Al-Munafiqun", "At-Taghabun", "At-Talaq",
	"At-Tahrim", "Al-Mulk", "Al-Qalam", "Al-Haqqah", "Al-Ma'arij",
	"Nuh", "Al-Jinn", "Al-Muzzammil", "Al-Muddaththir", "Al-Qiyamah",
	"Al-Insan", "Al-Mursalat", "An-Naba", "An-Nazi'at", "'Abasa",
	"At-Takwir", "Al-Infitar", "Al-Mutaffifin", "Al-Inshiqaq", "Al-Buruj",
	"At-Tariq", "Al-A'la", "Al-Ghashiyah", "Al-Fajr", "Al-Balad",
	"Ash-Shams", "Al-Layl", "Ad-Duhaa", "Ash-Sharh", "At-Tin",
	"Al-'Alaq", "Al-Qadr", "Al-Bayyinah", "Az-Zalzalah", "Al-'Adiyat",
	"Al-Qari'ah", "At-Takathur", "Al-'Asr", "Al-Humazah", "Al-Fil",
	"Quraysh", "Al-Ma'un", "Al-Kawthar", "Al-Kafirun", "An-Nasr",
	"Al-Masad", "Al-Ikhlas", "Al-Falaq", "An-Nas",
}

var ayahCounts = [SuraCount]int{
	7, 286, 200, 176, 120, 165, 206, 75, 129, 109,
	123, 111, 43, 52, 99, 128, 111, 110, 98, 135,
	112, 78, 118, 64, 77, 227, 93, 88, 69, 60,
	34, 30, 73, 54, 45, 83, 182, 88, 75, 85,
	54, 53, 89, 59, 37, 35, 38, 29, 18, 45,
	60, 49, 62, 55, 78, 96, 29, 22, 24, 13,
	14, 11, 11, 18, 12, 12, 30, 52, 52, 44,
	28, 28, 20, 56, 40, 31, 50, 40, 46, 42,
	29, 19, 36, 25, 22, 17, 19, 26, 30, 20,
	15, 21, 11, 8, 8, 19, 5, 8, 8, 11,
	11, 8, 3, 9, 5, 4, 7, 3, 6, 3,
	5, 4, 5, 6,
}

// ValidSura reports whether sura is in 1-114.
func ValidSura(sura int) bool {
	return sura >= 1 && sura <= SuraCount
}

// SuraName returns the transliterated name of a sura, or "" if sura is invalid.
func SuraName(sura int) string {
	if !ValidSura(sura) {
		return ""
	}
	return suraNames[sura-1]
}

// SuraTitle returns the display title used on sura header rows.
func SuraTitle(sura int) string {
	return "Sura " + SuraName(sura)
}

// AyahCount returns the number of ayahs in a sura, or 0 if sura is invalid.
func AyahCount(sura int) int {
	if !ValidSura(sura) {
		return 0
	}
	return ayahCounts[sura-1]
}

// ClampRange validates sura and clamps [from, to] to the sura's ayahs.
// A zero to means "through the last ayah".
func ClampRange(sura, from, to int) (int, int, error) {
	if !ValidSura(sura) {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidSura, sura)
	}
	count := AyahCount(sura)
	if from < 1 {
		from = 1
	}
	if to == 0 || to > count {
		to = count
	}
	if from > to {
		return 0, 0, fmt.Errorf("empty ayah range %d-%d in sura %d", from, to, sura)
	}
	return from, to, nil
}
