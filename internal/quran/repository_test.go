package quran

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo struct {
	verses []Verse
	texts  map[int64]map[Key]string
	err    error
}

func (f *fakeRepo) ImportVerses(context.Context, []Verse) (int, error) { return 0, nil }
func (f *fakeRepo) CreateTranslation(context.Context, string, string) (*Translation, error) {
	return nil, nil
}
func (f *fakeRepo) ImportTranslationText(context.Context, int64, []Verse) (int, error) {
	return 0, nil
}
func (f *fakeRepo) ListTranslations(context.Context) ([]*Translation, error) { return nil, nil }
func (f *fakeRepo) Close() error                                             { return nil }

func (f *fakeRepo) Verses(_ context.Context, sura, from, to int) ([]Verse, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []Verse
	for _, v := range f.verses {
		if v.Sura == sura && v.Ayah >= from && v.Ayah <= to {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) TranslationTexts(_ context.Context, id int64, _, _, _ int) (map[Key]string, error) {
	return f.texts[id], nil
}

func TestLoadRows(t *testing.T) {
	repo := &fakeRepo{
		verses: []Verse{
			{Sura: 112, Ayah: 1, Text: "قُلْ هُوَ ٱللَّهُ أَحَدٌ"},
			{Sura: 112, Ayah: 2, Text: "ٱللَّهُ ٱلصَّمَدُ"},
		},
		texts: map[int64]map[Key]string{
			1: {{Sura: 112, Ayah: 2}: "Allah, the Eternal Refuge."},
		},
	}
	translations := []*Translation{{ID: 1, Name: "sahih", Translator: "Sahih International"}}

	rows, err := LoadRows(context.Background(), repo, translations, 112, 1, 3)
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}

	// 112:3 has no Arabic stored but still gets number and spacer rows.
	var numbers, texts, translated int
	for _, r := range rows {
		switch r.Kind {
		case KindVerseNumber:
			numbers++
		case KindQuranText:
			texts++
		case KindTranslationText:
			translated++
		}
	}
	if numbers != 3 || texts != 2 || translated != 1 {
		t.Errorf("numbers=%d texts=%d translated=%d, want 3/2/1", numbers, texts, translated)
	}
	if rows[0].Kind != KindSuraHeader || rows[1].Kind != KindBasmallah {
		t.Errorf("expected header and basmallah first, got %v %v", rows[0].Kind, rows[1].Kind)
	}
}

func TestLoadRows_Errors(t *testing.T) {
	if _, err := LoadRows(context.Background(), &fakeRepo{}, nil, 0, 1, 1); !errors.Is(err, ErrInvalidSura) {
		t.Errorf("expected ErrInvalidSura, got %v", err)
	}

	boom := errors.New("boom")
	if _, err := LoadRows(context.Background(), &fakeRepo{err: boom}, nil, 1, 1, 1); !errors.Is(err, boom) {
		t.Errorf("expected repository error, got %v", err)
	}
}

func TestSelectTranslations(t *testing.T) {
	all := []*Translation{
		{ID: 1, Name: "pickthall"},
		{ID: 2, Name: "sahih"},
		{ID: 3, Name: "yusufali"},
	}

	if got := SelectTranslations(all, nil); len(got) != 3 {
		t.Errorf("empty names should select all, got %d", len(got))
	}

	got := SelectTranslations(all, []string{"sahih", "missing", "pickthall"})
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Errorf("unexpected selection: %+v", got)
	}
}
