package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestPadLinesWithBackground(t *testing.T) {
	out := PadLinesWithBackground("ab\ncdef", 5, 3, lipgloss.Color(""))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 5 {
			t.Errorf("line %d width = %d, want 5", i, w)
		}
	}
}

func TestPadLinesWithBackground_TruncatesWideLines(t *testing.T) {
	out := PadLinesWithBackground("abcdefgh", 4, 1, lipgloss.Color(""))
	if got := ansi.Strip(out); got != "abcd" {
		t.Errorf("got %q, want abcd", got)
	}
}

func TestLine_Truncates(t *testing.T) {
	style := lipgloss.NewStyle().PaddingLeft(1)
	out := ansi.Strip(Line(8, style, "a very long status"))
	if lipgloss.Width(out) != 8 {
		t.Errorf("width = %d, want 8 (%q)", lipgloss.Width(out), out)
	}
	if !strings.HasSuffix(out, "…") {
		t.Errorf("expected ellipsis, got %q", out)
	}
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter(FooterModel{
		InnerW:     20,
		StatusText: "copied 2:255",
		HelpText:   "q quit",
	})
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != FooterHeight {
		t.Fatalf("expected %d lines, got %d", FooterHeight, len(lines))
	}
	if !strings.HasPrefix(lines[0], "copied 2:255") {
		t.Errorf("status line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "q quit") {
		t.Errorf("help line = %q", lines[1])
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		sura, from, to int
		want           string
	}{
		{1, 1, 7, "1. Al-Fatihah"},
		{2, 1, 10, "2. Al-Baqarah (1-10)"},
		{0, 1, 1, "tarjama"},
	}
	for _, tc := range tests {
		if got := Title(tc.sura, tc.from, tc.to); got != tc.want {
			t.Errorf("Title(%d,%d,%d) = %q, want %q", tc.sura, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(0, 0); got != "0/0" {
		t.Errorf("Progress(0,0) = %q", got)
	}
	if got := Progress(4, 10); got != "5/10" {
		t.Errorf("Progress(4,10) = %q", got)
	}
}
