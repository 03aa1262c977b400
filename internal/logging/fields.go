package logging

// Field name constants for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig     = "config"
	FieldNixVersion = "nix_version"
	FieldFix        = "fix"
	FieldDryRun     = "dry_run"
	FieldJobs       = "jobs"
	FieldFormat     = "format"

	// Run statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesFixed      = "files_fixed"
	FieldReportsTotal    = "reports_total"
	FieldPasses          = "passes"

	// Rule fields.
	FieldRule = "rule"
	FieldCode = "code"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
)
