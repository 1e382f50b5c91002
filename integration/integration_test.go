package integration

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/tarjama/internal/db"
	"github.com/javiermolinar/tarjama/internal/quran"
	"github.com/javiermolinar/tarjama/internal/translation"
	"github.com/javiermolinar/tarjama/internal/tui/theme"
)

const arabicText = `113|1|قُلْ أَعُوذُ بِرَبِّ ٱلْفَلَقِ
113|2|مِن شَرِّ مَا خَلَقَ
113|3|وَمِن شَرِّ غَاسِقٍ إِذَا وَقَبَ
113|4|وَمِن شَرِّ ٱلنَّفَّٰثَٰتِ فِى ٱلْعُقَدِ
113|5|وَمِن شَرِّ حَاسِدٍ إِذَا حَسَدَ
114|1|بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ قُلْ أَعُوذُ بِرَبِّ ٱلنَّاسِ
114|2|مَلِكِ ٱلنَّاسِ
`

const sahihText = `113|5|And from the evil of an envier when he envies.
114|1|Say, "I seek refuge in the Lord of mankind,
114|2|The Sovereign of mankind.
`

const pickthallText = `113|5|And from the evil of the envier when he envieth.
114|1|Say: I seek refuge in the Lord of mankind,
`

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// importText parses a Tanzil text and stores it as Arabic or as a translation.
func importText(t *testing.T, repo *db.SQLite, text, name, translator string) {
	t.Helper()
	ctx := context.Background()
	verses, err := quran.ParseTanzil(strings.NewReader(text))
	if err != nil {
		t.Fatalf("failed to parse %s: %v", name, err)
	}
	if name == "" {
		if _, err := repo.ImportVerses(ctx, verses); err != nil {
			t.Fatalf("failed to import verses: %v", err)
		}
		return
	}
	tr, err := repo.CreateTranslation(ctx, name, translator)
	if err != nil {
		t.Fatalf("failed to create translation: %v", err)
	}
	if _, err := repo.ImportTranslationText(ctx, tr.ID, verses); err != nil {
		t.Fatalf("failed to import translation: %v", err)
	}
}

func seededRepo(t *testing.T) *db.SQLite {
	t.Helper()
	repo := openRepo(t)
	importText(t, repo, arabicText, "", "")
	importText(t, repo, sahihText, "sahih", "Sahih International")
	importText(t, repo, pickthallText, "pickthall", "Pickthall")
	return repo
}

// loadRange loads the end of Al-Falaq followed by the start of An-Nas.
func loadRange(t *testing.T, repo *db.SQLite) []quran.Row {
	t.Helper()
	ctx := context.Background()
	all, err := repo.ListTranslations(ctx)
	if err != nil {
		t.Fatalf("failed to list translations: %v", err)
	}
	selected := quran.SelectTranslations(all, []string{"sahih", "pickthall"})

	falaq, err := quran.LoadRows(ctx, repo, selected, 113, 5, 5)
	if err != nil {
		t.Fatalf("failed to load 113: %v", err)
	}
	nas, err := quran.LoadRows(ctx, repo, selected, 114, 1, 2)
	if err != nil {
		t.Fatalf("failed to load 114: %v", err)
	}
	return append(falaq, nas...)
}

func TestReadingPipeline_RowLayout(t *testing.T) {
	rows := loadRange(t, seededRepo(t))

	want := []quran.Kind{
		// 113:5
		quran.KindVerseNumber, quran.KindQuranText,
		quran.KindTranslator, quran.KindTranslationText,
		quran.KindTranslator, quran.KindTranslationText,
		quran.KindSpacer,
		// 114:1
		quran.KindSuraHeader, quran.KindBasmallah,
		quran.KindVerseNumber, quran.KindQuranText,
		quran.KindTranslator, quran.KindTranslationText,
		quran.KindTranslator, quran.KindTranslationText,
		quran.KindSpacer,
		// 114:2 has no pickthall text
		quran.KindVerseNumber, quran.KindQuranText,
		quran.KindTranslator, quran.KindTranslationText,
		quran.KindSpacer,
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, k := range want {
		if rows[i].Kind != k {
			t.Errorf("row %d kind = %v, want %v", i, rows[i].Kind, k)
		}
	}
}

func TestReadingPipeline_BindsAcrossSuraBoundary(t *testing.T) {
	rows := loadRange(t, seededRepo(t))
	th, err := theme.Load("dark")
	if err != nil {
		t.Fatalf("failed to load theme: %v", err)
	}

	r := translation.NewRenderer(translation.WithArabicShaping(true))
	r.SetRows(rows)
	r.SetTheme(translation.NewSnapshot(translation.Settings{FontSize: 15, NightMode: true, NightBrightness: 200}, th.Resources()))

	var clicked []int
	r.SetOnTranslationClickedListener(func(v *translation.View) {
		clicked = append(clicked, v.Position())
	})

	spacer := r.CreateView(r.ViewKindFor(6))
	r.BindView(spacer, 6)
	if spacer.Divider().ShowLine {
		t.Error("spacer before a new sura should hide its line")
	}
	r.BindView(spacer, 15)
	if !spacer.Divider().ShowLine {
		t.Error("spacer between ayahs of one sura should show its line")
	}
	if spacer.Divider().Color != "#c8c8c8" {
		t.Errorf("night divider color = %q, want #c8c8c8", spacer.Divider().Color)
	}
	r.BindView(spacer, len(rows)-1)
	if spacer.Divider().ShowLine {
		t.Error("last spacer should hide its line")
	}

	arabic := r.CreateView(r.ViewKindFor(10))
	r.BindView(arabic, 10)
	if got := arabic.Label().Text; got != "قُلْ أَعُوذُ بِرَبِّ ٱلنَّاسِ" {
		t.Errorf("first ayah text = %q, want basmallah stripped", got)
	}
	if got := arabic.Label().Size; got != 21 {
		t.Errorf("arabic size = %v, want 21", got)
	}

	header := r.CreateView(r.ViewKindFor(7))
	r.BindView(header, 7)
	if got := header.Label().Text; got != "Sura An-Nas" {
		t.Errorf("header text = %q", got)
	}

	text := r.CreateView(r.ViewKindFor(12))
	r.BindView(text, 12)
	text.Click()
	if len(clicked) != 1 || clicked[0] != 12 {
		t.Errorf("clicked = %v, want [12]", clicked)
	}

	painted := translation.NewPainter(th.Resources()).Paint(text, 60, r.Theme().FontSize)
	if !strings.Contains(ansi.Strip(painted), "Lord of mankind") {
		t.Errorf("painted text = %q", painted)
	}
}
