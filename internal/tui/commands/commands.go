// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tarjama/internal/quran"
)

// SuraLoadedMsg is sent when a sura's rows are ready.
type SuraLoadedMsg struct {
	Sura int
	From int
	To   int
	Rows []quran.Row
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadSura reads a sura range and lays it out as rows.
// A nil repository yields an empty sura so the screen still opens.
func LoadSura(repo quran.Repository, names []string, sura, from, to int) tea.Cmd {
	return func() tea.Msg {
		from, to, err := quran.ClampRange(sura, from, to)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if repo == nil {
			return SuraLoadedMsg{Sura: sura, From: from, To: to}
		}

		ctx := context.Background()
		all, err := repo.ListTranslations(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}

		rows, err := quran.LoadRows(ctx, repo, quran.SelectTranslations(all, names), sura, from, to)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SuraLoadedMsg{Sura: sura, From: from, To: to, Rows: rows}
	}
}

// CopyToClipboard writes text to the system clipboard and reports the outcome.
func CopyToClipboard(text, label string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsgCmd{Msg: "Copied " + label}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
