// Package main is the entry point for the nixlint CLI.
package main

import (
	"os"

	"github.com/yaklabco/nixlint/internal/cli"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/nixlint/pkg/lint/rules"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	os.Exit(cli.ExitCode(rootCmd.Execute()))
}
