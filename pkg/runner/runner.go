package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/nixlint/internal/logging"
	"github.com/yaklabco/nixlint/pkg/fix"
	"github.com/yaklabco/nixlint/pkg/fsutil"
	"github.com/yaklabco/nixlint/pkg/lint"
)

// Runner processes many files through one lint engine.
type Runner struct {
	// Engine drives per-file linting and fixing.
	Engine *lint.Engine
}

// New creates a runner around engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// NewFromConfig builds a runner whose engine dispatches through the
// default registry with the config's disabled rules removed.
func NewFromConfig(disabled func(name string) bool) *Runner {
	var enabled []lint.Lint
	for _, l := range lint.Default().All() {
		if disabled != nil && disabled(l.Name()) {
			continue
		}
		enabled = append(enabled, l)
	}
	return New(lint.NewEngine(lint.NewRegistry(enabled)))
}

// Run discovers files under opts.Paths and processes them with a
// bounded worker pool. Outcomes are returned in path order regardless
// of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	cfg := opts.effectiveConfig()
	result := newResult()
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := cfg.Jobs
	if jobs < 1 {
		jobs = 1
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	log := logging.FromContext(ctx)
	log.Debug("processing files",
		logging.FieldPaths, len(files),
		logging.FieldJobs, jobs,
		logging.FieldFix, opts.Fix,
		logging.FieldDryRun, opts.DryRun)

	// Workers write into their own slot, so the slice needs no lock
	// and the output order matches the sorted file list.
	outcomes := make([]FileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			outcomes[i] = r.processFile(gctx, path, opts)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result, nil
}

// processFile lints one file, applying and persisting fixes when
// requested. All failures land in the outcome rather than aborting the
// run.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}
	cfg := opts.effectiveConfig()

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Content = content

	sess, err := lint.NewSession(path, cfg.NixVersion)
	if err != nil {
		outcome.Err = fmt.Errorf("session for %s: %w", path, err)
		return outcome
	}

	if !opts.Fix && !opts.DryRun {
		outcome.Reports = r.Engine.LintSource(content, sess).Reports
		return outcome
	}

	fixed := r.Engine.Fix(content, sess)
	outcome.Reports = fixed.Remaining
	outcome.Fixed = fixed.Applied
	if !fixed.Changed() {
		return outcome
	}

	if opts.DryRun {
		outcome.Diff = fix.GenerateDiff(path, content, fixed.Content)
		return outcome
	}

	// The file may have changed under us while linting; refuse to
	// clobber an external edit.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	if modified {
		logging.FromContext(ctx).Warn("file changed during lint, skipping write",
			logging.FieldPath, path)
		outcome.Skipped = true
		return outcome
	}

	if err := fsutil.WriteAtomic(ctx, path, fixed.Content, info.Mode); err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Written = true
	return outcome
}
