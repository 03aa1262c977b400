// Package pretty renders styled terminal output for lint findings,
// fix previews, and run summaries.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles holds the lipgloss renderers used across the pretty output.
type Styles struct {
	// Width caps rendered source context lines. Zero means no limit.
	Width int

	// Severity styles.
	Error lipgloss.Style
	Warn  lipgloss.Style
	Hint  lipgloss.Style

	// Finding components.
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	RuleName   lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style
	Suggestion lipgloss.Style

	// Diff styles.
	DiffHeader lipgloss.Style
	DiffHunk   lipgloss.Style
	DiffAdd    lipgloss.Style
	DiffRemove lipgloss.Style

	// Summary styles.
	Success lipgloss.Style
	Failure lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates the style set, plain when color is disabled.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Error: plain, Warn: plain, Hint: plain,
			FilePath: plain, Location: plain, RuleName: plain,
			Message: plain, SourceLine: plain, Caret: plain,
			Suggestion: plain,
			DiffHeader: plain, DiffHunk: plain, DiffAdd: plain, DiffRemove: plain,
			Success: plain, Failure: plain,
			Dim: plain, Bold: plain,
		}
	}
	return &Styles{
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		RuleName:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),

		DiffHeader: lipgloss.NewStyle().Bold(true),
		DiffHunk:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// ColorEnabled resolves a color mode flag against the output terminal.
// Mode "always" forces color, "never" disables it, anything else
// auto-detects.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth returns the width of the output terminal, or fallback
// when the writer is not a terminal.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
