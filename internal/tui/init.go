package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javiermolinar/tarjama/internal/config"
	"github.com/javiermolinar/tarjama/internal/db"
	"github.com/javiermolinar/tarjama/internal/quran"
)

// InitState tracks whether the verse database still has to be imported.
type InitState struct {
	NeedsInit bool
	DBPath    string
}

// DetectInitState checks for a missing database file.
func DetectInitState(cfg *config.Config) (InitState, error) {
	state := InitState{DBPath: cfg.Storage.DBPath}

	missing, err := pathMissing(state.DBPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking db path: %w", err)
	}
	state.NeedsInit = missing
	return state, nil
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}

// OpenRepo opens the database at dbPath, creating its directory when needed.
func OpenRepo(dbPath string) (quran.Repository, error) {
	return openRepo(dbPath)
}

func openRepo(dbPath string) (quran.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}
