package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/nixlint/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Files   []JSONFile  `json:"files"`
	Summary JSONSummary `json:"summary"`
}

// JSONFile holds one file's findings.
type JSONFile struct {
	Path    string       `json:"path"`
	Reports []JSONReport `json:"reports"`
	Fixed   int          `json:"fixed,omitempty"`
	Written bool         `json:"written,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// JSONReport mirrors one rule firing.
type JSONReport struct {
	Note        string           `json:"note"`
	Code        uint32           `json:"code"`
	Severity    string           `json:"severity"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
}

// JSONDiagnostic is one located finding. At holds the byte range as a
// [start, end) pair.
type JSONDiagnostic struct {
	At         [2]int          `json:"at"`
	Message    string          `json:"message"`
	Suggestion *JSONSuggestion `json:"suggestion,omitempty"`
}

// JSONSuggestion is a proposed fix with its replacement rendered to
// text.
type JSONSuggestion struct {
	At  [2]int `json:"at"`
	Fix string `json:"fix"`
}

// JSONSummary carries aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesWritten    int            `json:"filesWritten"`
	FilesErrored    int            `json:"filesErrored"`
	TotalFindings   int            `json:"totalFindings"`
	Fixable         int            `json:"fixable"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter renders results as a single JSON document.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates the JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)
	encoder := json.NewEncoder(r.bw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}
	return output.Summary.TotalFindings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	out := &JSONOutput{
		Files: make([]JSONFile, 0, len(result.Files)),
		Summary: JSONSummary{
			FilesChecked:    result.Stats.FilesProcessed,
			FilesWithIssues: result.Stats.FilesWithIssues,
			FilesWritten:    result.Stats.FilesWritten,
			FilesErrored:    result.Stats.FilesErrored,
			TotalFindings:   result.Stats.ReportsTotal,
			Fixable:         result.Stats.ReportsFixable,
			BySeverity:      result.Stats.ReportsBySeverity,
		},
	}

	for _, file := range result.Files {
		jf := JSONFile{
			Path:    r.opts.displayPath(file.Path),
			Reports: make([]JSONReport, 0, len(file.Reports)),
			Fixed:   file.Fixed,
			Written: file.Written,
		}
		if file.Err != nil {
			jf.Error = file.Err.Error()
		}
		for _, rep := range file.Reports {
			jr := JSONReport{
				Note:        rep.Note,
				Code:        rep.Code,
				Severity:    rep.Severity.String(),
				Diagnostics: make([]JSONDiagnostic, 0, len(rep.Diagnostics)),
			}
			for _, d := range rep.Diagnostics {
				jd := JSONDiagnostic{
					At:      [2]int{d.At.Start, d.At.End},
					Message: d.Message,
				}
				if d.Suggestion != nil {
					jd.Suggestion = &JSONSuggestion{
						At:  [2]int{d.Suggestion.At.Start, d.Suggestion.At.End},
						Fix: d.Suggestion.FixText(),
					}
				}
				jr.Diagnostics = append(jr.Diagnostics, jd)
			}
			jf.Reports = append(jf.Reports, jr)
		}
		out.Files = append(out.Files, jf)
	}
	return out
}
