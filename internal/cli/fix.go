package cli

import (
	"github.com/spf13/cobra"
)

func newFixCommand() *cobra.Command {
	flags := &runFlags{}
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Lint Nix files and apply suggested fixes",
		Long: `Lint Nix files and rewrite fixable findings in place.

Fixes are applied repeatedly until no fixable finding remains, with a
re-parse between rounds. Files whose content changes on disk while the
linter runs are skipped rather than overwritten. Files with syntax
errors are never rewritten.

Examples:
  nixlint fix                    # Fix current directory
  nixlint fix --dry-run          # Preview fixes as unified diffs
  nixlint fix default.nix        # Fix a single file`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, true, dryRun)
		},
	}

	addRunFlags(cmd, flags)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show fixes without writing files")
	return cmd
}
