package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Lint Nix files and report findings",
		Long: `Lint Nix files for antipatterns.

By default, checks all .nix files in the current directory and its
subdirectories. Specify paths to check specific files or directories.

Examples:
  nixlint check                  # Check current directory
  nixlint check pkgs/            # Check one directory
  nixlint check flake.nix        # Check single file
  nixlint check -o errfmt        # Machine-readable output
  nixlint check --strict         # Any finding fails the run`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, false, false)
		},
	}

	addRunFlags(cmd, flags)
	return cmd
}
