package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS verses (
			sura INTEGER NOT NULL CHECK(sura BETWEEN 1 AND 114),
			ayah INTEGER NOT NULL CHECK(ayah >= 1),
			text TEXT NOT NULL,
			PRIMARY KEY (sura, ayah)
		);

		CREATE TABLE IF NOT EXISTS translations (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL UNIQUE,
			translator TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS translation_texts (
			translation_id INTEGER NOT NULL REFERENCES translations(id),
			sura           INTEGER NOT NULL,
			ayah           INTEGER NOT NULL,
			text           TEXT NOT NULL,
			PRIMARY KEY (translation_id, sura, ayah)
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
