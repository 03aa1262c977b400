package cli

import "github.com/yaklabco/nixlint/pkg/runner"

// Exit codes for nixlint.
const (
	// ExitSuccess indicates a clean run with no findings.
	ExitSuccess = 0

	// ExitFindings indicates the run completed and produced findings.
	ExitFindings = 1

	// ExitUsage indicates invalid command line usage.
	ExitUsage = 64

	// ExitConfigError indicates a configuration file problem.
	ExitConfigError = 65

	// ExitInternalError indicates an internal failure.
	ExitInternalError = 70

	// ExitIOError indicates a file could not be read or written.
	ExitIOError = 74
)

// exitCodeFromResult maps a run's outcome to an exit code. Syntax
// errors and error-severity findings always fail; with strict, any
// finding fails.
func exitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasErrors() {
		return ExitFindings
	}
	if strict && result.HasIssues() {
		return ExitFindings
	}
	return ExitSuccess
}
