// Package ui implements the tarjama command line.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tarjama/internal/config"
	"github.com/javiermolinar/tarjama/internal/quran"
	"github.com/javiermolinar/tarjama/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   quran.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging

	sura         int
	translations []string
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured db path.
func NewApp(repo quran.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "tarjama",
		Short: "Read the Quran with translations in the terminal",
		Long: `Tarjama shows the Arabic text of the Quran alongside one or more
translations, verse by verse.

Import the Arabic text and translations in Tanzil's "sura|ayah|text"
format first, then run tarjama to start reading.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if len(a.translations) > 0 {
				a.config.Reader.Translations = a.translations
			}
			if !quran.ValidSura(a.sura) {
				return fmt.Errorf("%w: %d", quran.ErrInvalidSura, a.sura)
			}
			return tui.RunWithDebug(a.repo, a.config, a.debug, tui.WithSura(a.sura, 0, 0))
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.Flags().IntVar(&a.sura, "sura", 1, "Sura to open (1-114)")
	a.root.Flags().StringSliceVar(&a.translations, "translation", nil, "Translation names to show (default: config or all)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.translationsCmd())
	a.root.AddCommand(a.showCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tarjama %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := tui.OpenRepo(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	a.repo = repo
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
