package quran

import (
	"context"
	"time"
)

// Translation describes an installed translation.
type Translation struct {
	ID         int64
	Name       string // Short unique name, e.g. "sahih"
	Translator string // Display name shown on translator rows
	CreatedAt  time.Time
}

// Repository defines the storage interface for verses and translations.
type Repository interface {
	// ImportVerses upserts Arabic verse text. Returns the number of verses written.
	ImportVerses(ctx context.Context, verses []Verse) (int, error)

	// CreateTranslation registers a translation, or returns the existing one with the same name.
	CreateTranslation(ctx context.Context, name, translator string) (*Translation, error)

	// ImportTranslationText upserts the text of a translation.
	// Verse.Text holds the translated text. Returns the number of verses written.
	ImportTranslationText(ctx context.Context, translationID int64, verses []Verse) (int, error)

	// ListTranslations returns all installed translations ordered by name.
	ListTranslations(ctx context.Context) ([]*Translation, error)

	// Verses returns the Arabic verses of a sura within [from, to], in ayah order.
	Verses(ctx context.Context, sura, from, to int) ([]Verse, error)

	// TranslationTexts returns a translation's text for a sura within [from, to], keyed by verse.
	TranslationTexts(ctx context.Context, translationID int64, sura, from, to int) (map[Key]string, error)

	// Close releases any resources held by the repository.
	Close() error
}

// LoadRows reads a range of a sura and lays it out as reader rows.
// Verses without stored Arabic text are still listed so translations show up.
func LoadRows(ctx context.Context, repo Repository, translations []*Translation, sura, from, to int) ([]Row, error) {
	from, to, err := ClampRange(sura, from, to)
	if err != nil {
		return nil, err
	}

	stored, err := repo.Verses(ctx, sura, from, to)
	if err != nil {
		return nil, err
	}
	arabic := make(map[int]string, len(stored))
	for _, v := range stored {
		arabic[v.Ayah] = v.Text
	}

	verses := make([]Verse, 0, to-from+1)
	for ayah := from; ayah <= to; ayah++ {
		verses = append(verses, Verse{Sura: sura, Ayah: ayah, Text: arabic[ayah]})
	}

	sets := make([]TranslationSet, 0, len(translations))
	for _, t := range translations {
		texts, err := repo.TranslationTexts(ctx, t.ID, sura, from, to)
		if err != nil {
			return nil, err
		}
		sets = append(sets, TranslationSet{Translator: t.Translator, Texts: texts})
	}

	return BuildRows(verses, sets), nil
}

// SelectTranslations filters translations by name, keeping the order of names.
// An empty names list selects every translation.
func SelectTranslations(all []*Translation, names []string) []*Translation {
	if len(names) == 0 {
		return all
	}
	byName := make(map[string]*Translation, len(all))
	for _, t := range all {
		byName[t.Name] = t
	}
	selected := make([]*Translation, 0, len(names))
	for _, n := range names {
		if t, ok := byName[n]; ok {
			selected = append(selected, t)
		}
	}
	return selected
}
