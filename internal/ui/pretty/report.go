package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// FormatFileHeader renders the grouping header for one file.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount == 1 {
		header += s.Dim.Render(" (1 issue)")
	} else if issueCount > 1 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}

// FormatReport renders one report's diagnostics, with source context
// when index is non-nil.
func (s *Styles) FormatReport(path string, rep *lint.Report, index *syntax.LineIndex) string {
	var b strings.Builder
	for _, d := range rep.Diagnostics {
		line, col := 1, 1
		if index != nil {
			line, col = index.Position(d.At.Start)
		}

		b.WriteString(fmt.Sprintf("  %s%s  %s  %s  %s\n",
			s.FilePath.Render(path),
			s.Location.Render(fmt.Sprintf(":%d:%d", line, col)),
			s.FormatSeverity(rep.Severity),
			s.Message.Render(d.Message),
			s.RuleName.Render("("+rep.Note+")"),
		))

		if index != nil {
			b.WriteString(s.formatSourceContext(index, d.At, line, col))
		}
		if d.Suggestion != nil {
			b.WriteString("    " + s.Dim.Render("suggestion:") + " " +
				s.Suggestion.Render(singleLine(d.Suggestion.FixText())) + "\n")
		}
	}
	return b.String()
}

// FormatSeverity renders a styled severity label.
func (s *Styles) FormatSeverity(sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return s.Error.Render("error")
	case lint.SeverityHint:
		return s.Hint.Render("hint")
	default:
		return s.Warn.Render("warn")
	}
}

// formatSourceContext renders the offending source line with a caret
// run under the diagnostic span.
func (s *Styles) formatSourceContext(index *syntax.LineIndex, at syntax.TextRange, line, col int) string {
	const indent = "        "

	src := index.Line(line)
	if src == "" {
		return ""
	}
	if s.Width > len(indent) && len(src) > s.Width-len(indent) {
		src = src[:s.Width-len(indent)]
	}

	var b strings.Builder
	b.WriteString(indent + s.SourceLine.Render(src) + "\n")

	width := at.Len()
	if width < 1 || col-1+width > len(src) {
		width = 1
	}
	b.WriteString(indent + strings.Repeat(" ", col-1) +
		s.Caret.Render(strings.Repeat("^", width)) + "\n")
	return b.String()
}

// singleLine collapses a multi-line replacement for inline display.
func singleLine(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}
	fields := strings.Fields(text)
	return strings.Join(fields, " ")
}
