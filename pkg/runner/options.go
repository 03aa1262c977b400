// Package runner orchestrates linting and fixing across many files: it
// discovers Nix sources, fans work out to a bounded worker pool, and
// aggregates per-file outcomes into deterministic results.
package runner

import (
	"github.com/yaklabco/nixlint/pkg/config"
)

// Options controls one multi-file run.
type Options struct {
	// Paths are the files or directories to process. Empty means the
	// working directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process
	// working directory.
	WorkingDir string

	// Fix rewrites files in place instead of only reporting.
	Fix bool

	// DryRun computes fixes and diffs but writes nothing. Implies Fix
	// semantics for the lint passes.
	DryRun bool

	// Config is the resolved configuration for the run.
	Config *config.Config
}

// effectivePaths returns the paths to process, defaulting to ".".
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveConfig returns the run configuration, defaulting when unset.
func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}
