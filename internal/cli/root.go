// Package cli provides the cobra command structure for nixlint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/nixlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root nixlint command with all
// subcommands attached.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "nixlint",
		Short: "Lints and suggestions for the Nix programming language",
		Long: `nixlint finds antipatterns in Nix expressions and can rewrite
many of them automatically.

Checks run over a lossless syntax tree, so applied fixes preserve the
surrounding formatting and comments. Parse errors are reported through
the same pipeline as lint findings.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newExplainCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
