package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/runner"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// ErrFmtReporter renders one line per finding in the form
// file>line:col:severity:code:message, for editors and scripts.
type ErrFmtReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewErrFmtReporter creates the errfmt reporter.
func NewErrFmtReporter(opts Options) *ErrFmtReporter {
	return &ErrFmtReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *ErrFmtReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	total := 0
	for _, file := range result.Files {
		if file.Err != nil || !file.HasIssues() {
			continue
		}
		path := r.opts.displayPath(file.Path)
		index := syntax.NewLineIndex(file.Content)
		for _, rep := range file.Reports {
			for _, d := range rep.Diagnostics {
				line, col := index.Position(d.At.Start)
				fmt.Fprintf(r.bw, "%s>%d:%d:%s:%d:%s\n",
					path, line, col, severityChar(rep.Severity), rep.Code, d.Message)
				total++
			}
		}
	}
	return total, nil
}

func severityChar(sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return "E"
	case lint.SeverityHint:
		return "H"
	default:
		return "W"
	}
}
