package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tarjama/internal/quran"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import Arabic text or a translation",
		Long: `Import verses from a Tanzil text file, one "sura|ayah|text" line per verse.
Blank lines and lines starting with # are skipped. Importing the same
file twice overwrites the earlier text.`,
	}

	cmd.AddCommand(a.importArabicCmd())
	cmd.AddCommand(a.importTranslationCmd())
	return cmd
}

func (a *App) importArabicCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "arabic FILE",
		Short:   "Import the Arabic text",
		Example: `  tarjama import arabic quran-uthmani.txt`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			f, path, err := openSource(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			count, err := importArabic(context.Background(), a.repo, f)
			if err != nil {
				return fmt.Errorf("importing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s verses from %s\n",
				formatSuccess("Imported"), formatRef(fmt.Sprint(count)), path)
			return nil
		},
	}
}

func (a *App) importTranslationCmd() *cobra.Command {
	var name, translator string

	cmd := &cobra.Command{
		Use:     "translation FILE",
		Short:   "Import a translation",
		Example: `  tarjama import translation en.sahih.txt --name sahih --translator "Sahih International"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name = strings.TrimSpace(name)
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			if strings.TrimSpace(translator) == "" {
				translator = name
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			f, path, err := openSource(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			count, err := importTranslation(context.Background(), a.repo, f, name, translator)
			if err != nil {
				return fmt.Errorf("importing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s verses of %q from %s\n",
				formatSuccess("Imported"), formatRef(fmt.Sprint(count)), name, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Short unique name for the translation (required)")
	cmd.Flags().StringVar(&translator, "translator", "", "Translator name shown above the text (default: --name)")
	return cmd
}

func importArabic(ctx context.Context, repo quran.Repository, r io.Reader) (int, error) {
	verses, err := quran.ParseTanzil(r)
	if err != nil {
		return 0, err
	}
	return repo.ImportVerses(ctx, verses)
}

func importTranslation(ctx context.Context, repo quran.Repository, r io.Reader, name, translator string) (int, error) {
	verses, err := quran.ParseTanzil(r)
	if err != nil {
		return 0, err
	}
	t, err := repo.CreateTranslation(ctx, name, translator)
	if err != nil {
		return 0, fmt.Errorf("creating translation %q: %w", name, err)
	}
	return repo.ImportTranslationText(ctx, t.ID, verses)
}

// openSource opens an import file after resolving its path.
func openSource(arg string) (*os.File, string, error) {
	path, err := resolvePath(arg)
	if err != nil {
		return nil, "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("file does not exist: %s", path)
		}
		return nil, "", fmt.Errorf("checking file: %w", err)
	}
	if info.IsDir() {
		return nil, "", fmt.Errorf("path is a directory: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening file: %w", err)
	}
	return f, path, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
