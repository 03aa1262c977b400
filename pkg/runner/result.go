package runner

import (
	"github.com/yaklabco/nixlint/pkg/fix"
	"github.com/yaklabco/nixlint/pkg/lint"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the absolute path of the processed file.
	Path string

	// Content is the file content the reports refer to. In fix mode
	// this is the original content, not the rewritten one.
	Content []byte

	// Reports holds the findings for this file, in traversal order.
	Reports []*lint.Report

	// Fixed counts suggestions applied to this file.
	Fixed int

	// Written is true when the file was rewritten on disk.
	Written bool

	// Skipped is true when an external modification was detected
	// between read and write; the file was left untouched.
	Skipped bool

	// Diff carries the dry-run preview, nil outside dry runs or when
	// nothing would change.
	Diff *fix.Diff

	// Err is set when the file could not be processed at all.
	Err error
}

// HasIssues reports whether any findings remain for this file.
func (o FileOutcome) HasIssues() bool {
	return len(o.Reports) > 0
}

// Stats aggregates a whole run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesErrored    int
	FilesSkipped    int
	FilesWithIssues int
	FilesWritten    int

	// ReportsTotal counts findings across all files.
	ReportsTotal int

	// ReportsFixable counts findings carrying a suggestion.
	ReportsFixable int

	// ReportsBySeverity maps severity names to counts.
	ReportsBySeverity map[string]int

	// SuggestionsApplied counts fixes spliced across all files.
	SuggestionsApplied int
}

// Result is the aggregate outcome of a run. Files are ordered by path
// regardless of worker completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasIssues reports whether any findings were produced.
func (r *Result) HasIssues() bool {
	return r != nil && r.Stats.ReportsTotal > 0
}

// HasErrors reports whether any file failed to process or produced an
// error-severity finding.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.ReportsBySeverity[lint.SeverityError.String()] > 0
}

func newResult() *Result {
	return &Result{Stats: Stats{ReportsBySeverity: make(map[string]int)}}
}

// accumulate folds one outcome into the aggregate.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesProcessed++

	if outcome.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	r.Stats.SuggestionsApplied += outcome.Fixed

	if len(outcome.Reports) > 0 {
		r.Stats.FilesWithIssues++
	}
	for _, rep := range outcome.Reports {
		r.Stats.ReportsTotal++
		r.Stats.ReportsBySeverity[rep.Severity.String()]++
		if rep.HasSuggestions() {
			r.Stats.ReportsFixable++
		}
	}
}
