// Package reporter formats runner results for output: styled terminal
// findings, machine-readable single-line errfmt, and JSON.
package reporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yaklabco/nixlint/pkg/config"
	"github.com/yaklabco/nixlint/pkg/runner"
)

// bufWriterSize is the buffer size for output writers.
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the output destination, typically os.Stdout.
	Writer io.Writer

	// Color controls colorized output: "auto", "always", or "never".
	Color string

	// ShowContext includes the offending source line under each
	// finding (pretty format only).
	ShowContext bool

	// WorkingDir shortens absolute paths to relative ones in output.
	WorkingDir string
}

// DefaultOptions returns options writing styled output to stdout.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Color:       "auto",
		ShowContext: true,
	}
}

// Reporter formats and writes one run's results.
type Reporter interface {
	// Report writes formatted output and returns the number of
	// findings reported.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates the reporter for the given format.
func New(format config.Format, opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	switch format {
	case config.FormatPretty, "":
		return NewPrettyReporter(opts), nil
	case config.FormatErrFmt:
		return NewErrFmtReporter(opts), nil
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// displayPath shortens path relative to the working directory when
// that produces something shorter.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
