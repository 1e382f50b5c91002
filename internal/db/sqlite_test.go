package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/javiermolinar/tarjama/internal/quran"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func TestNew_ClosesDatabaseWhenMigrationFails(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "conflict.db")

	// An index named like a table makes CREATE TABLE fail.
	seed, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to seed database: %v", err)
	}
	if _, err := seed.Exec(`CREATE TABLE other (x INTEGER); CREATE INDEX verses ON other (x);`); err != nil {
		t.Fatalf("failed to seed schema: %v", err)
	}
	if err := seed.Close(); err != nil {
		t.Fatalf("failed to close seed: %v", err)
	}

	if _, err := New(dbPath); err == nil {
		t.Fatal("expected migration error")
	}

	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	if _, err := open(db); err == nil {
		t.Fatal("expected migration error")
	}
	if err := db.Ping(); err == nil {
		t.Error("expected database to be closed after failed migration")
	}
}

func TestImportVerses(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	verses := []quran.Verse{
		{Sura: 112, Ayah: 1, Text: "قُلْ هُوَ ٱللَّهُ أَحَدٌ"},
		{Sura: 112, Ayah: 2, Text: "ٱللَّهُ ٱلصَّمَدُ"},
		{Sura: 112, Ayah: 3, Text: "لَمْ يَلِدْ وَلَمْ يُولَدْ"},
		{Sura: 113, Ayah: 1, Text: "قُلْ أَعُوذُ بِرَبِّ ٱلْفَلَقِ"},
	}

	n, err := repo.ImportVerses(ctx, verses)
	if err != nil {
		t.Fatalf("ImportVerses failed: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 verses written, got %d", n)
	}

	got, err := repo.Verses(ctx, 112, 2, 3)
	if err != nil {
		t.Fatalf("Verses failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 verses, got %d", len(got))
	}
	if got[0].Ayah != 2 || got[1].Ayah != 3 {
		t.Errorf("expected ayahs 2,3 in order, got %d,%d", got[0].Ayah, got[1].Ayah)
	}
}

func TestImportVerses_Upsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.ImportVerses(ctx, []quran.Verse{{Sura: 1, Ayah: 1, Text: "old"}}); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	if _, err := repo.ImportVerses(ctx, []quran.Verse{{Sura: 1, Ayah: 1, Text: "new"}}); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	got, err := repo.Verses(ctx, 1, 1, 1)
	if err != nil {
		t.Fatalf("Verses failed: %v", err)
	}
	if len(got) != 1 || got[0].Text != "new" {
		t.Errorf("expected single upserted verse, got %+v", got)
	}
}

func TestImportVerses_Empty(t *testing.T) {
	repo := newTestRepo(t)

	n, err := repo.ImportVerses(context.Background(), nil)
	if err != nil {
		t.Fatalf("ImportVerses failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
}

func TestCreateTranslation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateTranslation(ctx, "sahih", "Sahih International")
	if err != nil {
		t.Fatalf("CreateTranslation failed: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected ID to be set")
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	again, err := repo.CreateTranslation(ctx, "sahih", "Saheeh International")
	if err != nil {
		t.Fatalf("second CreateTranslation failed: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("expected same ID %d, got %d", first.ID, again.ID)
	}
	if again.Translator != "Saheeh International" {
		t.Errorf("expected translator updated, got %q", again.Translator)
	}
}

func TestCreateTranslation_Validation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateTranslation(ctx, "  ", "Someone"); err == nil {
		t.Error("expected error for empty name")
	}

	tr, err := repo.CreateTranslation(ctx, "pickthall", "")
	if err != nil {
		t.Fatalf("CreateTranslation failed: %v", err)
	}
	if tr.Translator != "pickthall" {
		t.Errorf("expected translator to default to name, got %q", tr.Translator)
	}
}

func TestListTranslations(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"yusufali", "sahih", "pickthall"} {
		if _, err := repo.CreateTranslation(ctx, name, name); err != nil {
			t.Fatalf("CreateTranslation(%s) failed: %v", name, err)
		}
	}

	list, err := repo.ListTranslations(ctx)
	if err != nil {
		t.Fatalf("ListTranslations failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 translations, got %d", len(list))
	}
	if list[0].Name != "pickthall" || list[2].Name != "yusufali" {
		t.Errorf("expected name order, got %s..%s", list[0].Name, list[2].Name)
	}
}

func TestTranslationTexts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sahih, err := repo.CreateTranslation(ctx, "sahih", "Sahih International")
	if err != nil {
		t.Fatalf("CreateTranslation failed: %v", err)
	}
	other, err := repo.CreateTranslation(ctx, "pickthall", "Pickthall")
	if err != nil {
		t.Fatalf("CreateTranslation failed: %v", err)
	}

	_, err = repo.ImportTranslationText(ctx, sahih.ID, []quran.Verse{
		{Sura: 112, Ayah: 1, Text: "Say, He is Allah, [who is] One,"},
		{Sura: 112, Ayah: 2, Text: "Allah, the Eternal Refuge."},
		{Sura: 113, Ayah: 1, Text: "Say, I seek refuge in the Lord of daybreak"},
	})
	if err != nil {
		t.Fatalf("ImportTranslationText failed: %v", err)
	}
	_, err = repo.ImportTranslationText(ctx, other.ID, []quran.Verse{
		{Sura: 112, Ayah: 1, Text: "Say: He is Allah, the One!"},
	})
	if err != nil {
		t.Fatalf("ImportTranslationText failed: %v", err)
	}

	texts, err := repo.TranslationTexts(ctx, sahih.ID, 112, 1, 4)
	if err != nil {
		t.Fatalf("TranslationTexts failed: %v", err)
	}
	if len(texts) != 2 {
		t.Fatalf("expected 2 texts, got %d", len(texts))
	}
	if texts[quran.Key{Sura: 112, Ayah: 2}] != "Allah, the Eternal Refuge." {
		t.Errorf("unexpected text for 112:2: %q", texts[quran.Key{Sura: 112, Ayah: 2}])
	}
}

func TestLoadRows_FromSQLite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.ImportVerses(ctx, []quran.Verse{
		{Sura: 108, Ayah: 1, Text: "إِنَّآ أَعْطَيْنَٰكَ ٱلْكَوْثَرَ"},
		{Sura: 108, Ayah: 2, Text: "فَصَلِّ لِرَبِّكَ وَٱنْحَرْ"},
		{Sura: 108, Ayah: 3, Text: "إِنَّ شَانِئَكَ هُوَ ٱلْأَبْتَرُ"},
	}); err != nil {
		t.Fatalf("ImportVerses failed: %v", err)
	}
	tr, err := repo.CreateTranslation(ctx, "sahih", "Sahih International")
	if err != nil {
		t.Fatalf("CreateTranslation failed: %v", err)
	}
	if _, err := repo.ImportTranslationText(ctx, tr.ID, []quran.Verse{
		{Sura: 108, Ayah: 1, Text: "Indeed, We have granted you, [O Muhammad], al-Kawthar."},
	}); err != nil {
		t.Fatalf("ImportTranslationText failed: %v", err)
	}

	rows, err := quran.LoadRows(ctx, repo, []*quran.Translation{tr}, 108, 0, 0)
	if err != nil {
		t.Fatalf("LoadRows failed: %v", err)
	}

	// header, basmallah, then 3 x (number, text, spacer) plus one translation row
	if len(rows) != 2+3*3+1 {
		t.Fatalf("expected %d rows, got %d", 2+3*3+1, len(rows))
	}
	if rows[len(rows)-1].Kind != quran.KindSpacer {
		t.Errorf("expected trailing spacer, got %v", rows[len(rows)-1].Kind)
	}
}
