package reporter

import (
	"bufio"
	"context"

	"github.com/yaklabco/nixlint/internal/ui/pretty"
	"github.com/yaklabco/nixlint/pkg/runner"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// PrettyReporter renders styled, human-oriented output grouped by file.
type PrettyReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewPrettyReporter creates the default terminal reporter.
func NewPrettyReporter(opts Options) *PrettyReporter {
	styles := pretty.NewStyles(pretty.ColorEnabled(opts.Color, opts.Writer))
	styles.Width = pretty.TerminalWidth(opts.Writer, 0)
	return &PrettyReporter{
		opts:   opts,
		styles: styles,
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *PrettyReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	total := 0
	for _, file := range result.Files {
		if file.Err != nil {
			r.bw.WriteString(r.styles.Failure.Render("error") + " " +
				r.opts.displayPath(file.Path) + ": " + file.Err.Error() + "\n")
			continue
		}
		if file.Diff != nil {
			r.bw.WriteString(r.styles.FormatDiff(file.Diff))
			r.bw.WriteString("\n")
		}
		if !file.HasIssues() {
			continue
		}

		path := r.opts.displayPath(file.Path)
		r.bw.WriteString(r.styles.FormatFileHeader(path, len(file.Reports)) + "\n")

		var index *syntax.LineIndex
		if r.opts.ShowContext {
			index = syntax.NewLineIndex(file.Content)
		}
		for _, rep := range file.Reports {
			r.bw.WriteString(r.styles.FormatReport(path, rep, index))
			total += len(rep.Diagnostics)
		}
		r.bw.WriteString("\n")
	}

	r.bw.WriteString(r.styles.FormatSummary(result.Stats))
	return total, nil
}
