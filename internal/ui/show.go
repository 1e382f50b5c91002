package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tarjama/internal/quran"
	"github.com/javiermolinar/tarjama/internal/translation"
	"github.com/javiermolinar/tarjama/internal/tui"
	"github.com/javiermolinar/tarjama/internal/tui/theme"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool
	var names []string

	cmd := &cobra.Command{
		Use:   "show SURA[:FROM[-TO]]",
		Short: "Print a sura or range of ayahs",
		Long: `Print verses with their translations to stdout, laid out the same
way the reader shows them.`,
		Example: `  tarjama show 1
  tarjama show 2:255
  tarjama show 36:1-12 --translation sahih`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			sura, from, to, err := parseRef(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			all, err := a.repo.ListTranslations(ctx)
			if err != nil {
				return fmt.Errorf("listing translations: %w", err)
			}
			if len(names) == 0 {
				names = a.config.Reader.Translations
			}

			rows, err := quran.LoadRows(ctx, a.repo, quran.SelectTranslations(all, names), sura, from, to)
			if err != nil {
				return fmt.Errorf("loading sura %d: %w", sura, err)
			}

			t, err := theme.Load(a.config.UI.Theme)
			if err != nil {
				return err
			}
			snap := translation.NewSnapshot(tui.ReaderSettings(a.config.Reader), t.Resources())
			r := translation.NewRenderer(translation.WithArabicShaping(a.config.Reader.ArabicShaping))
			r.SetRows(rows)
			r.SetTheme(snap)

			printRows(cmd.OutOrStdout(), r, translation.NewPainter(t.Resources()), termWidth())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().StringSliceVar(&names, "translation", nil, "Translation names to show (default: config or all)")
	return cmd
}

// parseRef parses "SURA", "SURA:AYAH" or "SURA:FROM-TO".
// A zero to means "through the last ayah".
func parseRef(ref string) (sura, from, to int, err error) {
	ref = strings.TrimSpace(ref)
	suraPart, ayahPart, hasAyah := strings.Cut(ref, ":")

	sura, err = strconv.Atoi(suraPart)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sura %q", suraPart)
	}
	if !quran.ValidSura(sura) {
		return 0, 0, 0, fmt.Errorf("%w: %d", quran.ErrInvalidSura, sura)
	}
	if !hasAyah {
		return sura, 1, 0, nil
	}

	fromPart, toPart, hasTo := strings.Cut(ayahPart, "-")
	from, err = strconv.Atoi(fromPart)
	if err != nil || from < 1 {
		return 0, 0, 0, fmt.Errorf("invalid ayah %q", fromPart)
	}
	to = from
	if hasTo {
		to, err = strconv.Atoi(toPart)
		if err != nil || to < from {
			return 0, 0, 0, fmt.Errorf("invalid ayah range %q", ayahPart)
		}
	}
	if from > quran.AyahCount(sura) {
		return 0, 0, 0, fmt.Errorf("sura %d has %d ayahs", sura, quran.AyahCount(sura))
	}
	return sura, from, to, nil
}

// printRows paints every row through one view per template.
func printRows(w io.Writer, r *translation.Renderer, p *translation.Painter, width int) {
	views := make(map[translation.Template]*translation.View)
	for i := 0; i < r.RowCount(); i++ {
		kind := r.ViewKindFor(i)
		tmpl := translation.TemplateFor(kind)
		v, ok := views[tmpl]
		if !ok {
			v = r.CreateView(kind)
			views[tmpl] = v
		}
		r.BindView(v, i)
		fmt.Fprintln(w, p.Paint(v, width, r.Theme().FontSize))
	}
}
