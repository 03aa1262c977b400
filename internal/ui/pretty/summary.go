package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/nixlint/pkg/runner"
)

// FormatSummary renders run statistics as a single closing line.
// Example: "4 findings (1 error, 3 warnings) in 2 files, 3 fixable".
func (s *Styles) FormatSummary(stats runner.Stats) string {
	fileWord := func(n int) string {
		if n == 1 {
			return "file"
		}
		return "files"
	}

	if stats.ReportsTotal == 0 {
		msg := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, fileWord(stats.FilesProcessed)))
		if stats.SuggestionsApplied > 0 {
			msg += ", " + s.Success.Render(fmt.Sprintf("%d fixed in %d %s",
				stats.SuggestionsApplied, stats.FilesWritten, fileWord(stats.FilesWritten)))
		}
		return msg + "\n"
	}

	findingWord := "findings"
	if stats.ReportsTotal == 1 {
		findingWord = "finding"
	}

	var bySeverity []string
	if n := stats.ReportsBySeverity["error"]; n > 0 {
		bySeverity = append(bySeverity, s.Error.Render(fmt.Sprintf("%d errors", n)))
	}
	if n := stats.ReportsBySeverity["warn"]; n > 0 {
		bySeverity = append(bySeverity, s.Warn.Render(fmt.Sprintf("%d warnings", n)))
	}
	if n := stats.ReportsBySeverity["hint"]; n > 0 {
		bySeverity = append(bySeverity, s.Hint.Render(fmt.Sprintf("%d hints", n)))
	}

	parts := []string{fmt.Sprintf("%d %s", stats.ReportsTotal, findingWord)}
	if len(bySeverity) > 0 {
		parts[0] += " (" + strings.Join(bySeverity, ", ") + ")"
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord(stats.FilesWithIssues)))

	if stats.ReportsFixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.ReportsFixable)))
	}
	if stats.SuggestionsApplied > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixed in %d %s",
			stats.SuggestionsApplied, stats.FilesWritten, fileWord(stats.FilesWritten))))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}

	return strings.Join(parts, ", ") + "\n"
}
