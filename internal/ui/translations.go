package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) translationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translations",
		Short: "List installed translations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			translations, err := a.repo.ListTranslations(context.Background())
			if err != nil {
				return fmt.Errorf("listing translations: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(translations) == 0 {
				fmt.Fprintln(out, "No translations installed. Use 'tarjama import translation'.")
				return nil
			}

			selected := make(map[string]bool, len(a.config.Reader.Translations))
			for _, name := range a.config.Reader.Translations {
				selected[name] = true
			}

			fmt.Fprintln(out, formatHeader("Installed translations"))
			for _, t := range translations {
				marker := " "
				if len(selected) == 0 || selected[t.Name] {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %-12s %s %s\n",
					marker,
					t.Name,
					t.Translator,
					formatMuted(t.CreatedAt.Format("2006-01-02")),
				)
			}
			return nil
		},
	}
}
