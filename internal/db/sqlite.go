// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/tarjama/internal/quran"
)

// SQLite implements quran.Repository using SQLite.
type SQLite struct {
	db *sqlx.DB
}

var _ quran.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return open(db)
}

// open migrates db and takes ownership of it. db is closed if migrations fail.
func open(db *sqlx.DB) (*SQLite, error) {
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ImportVerses upserts Arabic verse text in a single transaction.
func (s *SQLite) ImportVerses(ctx context.Context, verses []quran.Verse) (int, error) {
	query := `
		INSERT INTO verses (sura, ayah, text) VALUES (?, ?, ?)
		ON CONFLICT(sura, ayah) DO UPDATE SET text = excluded.text
	`
	return s.upsertBatch(ctx, query, verses, func(v quran.Verse) []any {
		return []any{v.Sura, v.Ayah, v.Text}
	})
}

// CreateTranslation registers a translation by name.
// If the name already exists its translator is updated and the existing row returned.
func (s *SQLite) CreateTranslation(ctx context.Context, name, translator string) (*quran.Translation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("translation name is empty")
	}
	if strings.TrimSpace(translator) == "" {
		translator = name
	}

	query := `
		INSERT INTO translations (name, translator, created_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET translator = excluded.translator
	`
	if _, err := s.db.ExecContext(ctx, query, name, translator, time.Now().Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("inserting translation: %w", err)
	}

	return s.translationByName(ctx, name)
}

func (s *SQLite) translationByName(ctx context.Context, name string) (*quran.Translation, error) {
	query := `SELECT id, name, translator, created_at FROM translations WHERE name = ?`

	var row translationRow
	if err := s.db.GetContext(ctx, &row, query, name); err != nil {
		return nil, fmt.Errorf("querying translation %q: %w", name, err)
	}
	return row.toTranslation(), nil
}

// ImportTranslationText upserts a translation's text in a single transaction.
func (s *SQLite) ImportTranslationText(ctx context.Context, translationID int64, verses []quran.Verse) (int, error) {
	query := `
		INSERT INTO translation_texts (translation_id, sura, ayah, text) VALUES (?, ?, ?, ?)
		ON CONFLICT(translation_id, sura, ayah) DO UPDATE SET text = excluded.text
	`
	return s.upsertBatch(ctx, query, verses, func(v quran.Verse) []any {
		return []any{translationID, v.Sura, v.Ayah, v.Text}
	})
}

func (s *SQLite) upsertBatch(ctx context.Context, query string, verses []quran.Verse, args func(quran.Verse) []any) (int, error) {
	if len(verses) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, v := range verses {
		if _, err := stmt.ExecContext(ctx, args(v)...); err != nil {
			return 0, fmt.Errorf("writing verse %s: %w", v.Ref(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return len(verses), nil
}

// translationRow mirrors the translations table.
type translationRow struct {
	ID         int64          `db:"id"`
	Name       string         `db:"name"`
	Translator string         `db:"translator"`
	CreatedAt  sql.NullString `db:"created_at"`
}

func (r translationRow) toTranslation() *quran.Translation {
	t := &quran.Translation{
		ID:         r.ID,
		Name:       r.Name,
		Translator: r.Translator,
	}
	if r.CreatedAt.Valid {
		if ts, err := time.Parse(time.RFC3339, r.CreatedAt.String); err == nil {
			t.CreatedAt = ts
		}
	}
	return t
}

// ListTranslations returns all installed translations ordered by name.
func (s *SQLite) ListTranslations(ctx context.Context) ([]*quran.Translation, error) {
	query := `SELECT id, name, translator, created_at FROM translations ORDER BY name`

	var rows []translationRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("querying translations: %w", err)
	}

	translations := make([]*quran.Translation, 0, len(rows))
	for _, r := range rows {
		translations = append(translations, r.toTranslation())
	}
	return translations, nil
}

// Verses returns the Arabic verses of a sura within [from, to].
func (s *SQLite) Verses(ctx context.Context, sura, from, to int) ([]quran.Verse, error) {
	query := `
		SELECT sura, ayah, text
		FROM verses
		WHERE sura = ? AND ayah BETWEEN ? AND ?
		ORDER BY ayah
	`

	var verses []quran.Verse
	if err := s.db.SelectContext(ctx, &verses, query, sura, from, to); err != nil {
		return nil, fmt.Errorf("querying verses: %w", err)
	}
	return verses, nil
}

// TranslationTexts returns a translation's text for a sura within [from, to].
func (s *SQLite) TranslationTexts(ctx context.Context, translationID int64, sura, from, to int) (map[quran.Key]string, error) {
	query := `
		SELECT sura, ayah, text
		FROM translation_texts
		WHERE translation_id = ? AND sura = ? AND ayah BETWEEN ? AND ?
	`

	var rows []quran.Verse
	if err := s.db.SelectContext(ctx, &rows, query, translationID, sura, from, to); err != nil {
		return nil, fmt.Errorf("querying translation text: %w", err)
	}

	texts := make(map[quran.Key]string, len(rows))
	for _, v := range rows {
		texts[v.Key()] = v.Text
	}
	return texts, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
