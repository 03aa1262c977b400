package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/nixlint/pkg/lint"

	_ "github.com/yaklabco/nixlint/pkg/lint/rules"
)

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <code|name>",
		Short: "Explain a lint rule",
		Long: `Print the long-form description of a lint rule, looked up by its
numeric code or its name.

Examples:
  nixlint explain 4
  nixlint explain manual_inherit_from`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := lint.Default()

			var rule lint.Lint
			var ok bool
			if code, err := strconv.ParseUint(args[0], 10, 32); err == nil {
				rule, ok = registry.ByCode(uint32(code))
			} else {
				rule, ok = registry.ByName(args[0])
			}
			if !ok {
				return &exitError{code: ExitUsage, err: fmt.Errorf("no rule matching %q", args[0])}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (code %d)\n", rule.Name(), rule.Code())
			fmt.Fprintf(out, "%s\n\n", rule.Note())
			fmt.Fprintln(out, rule.Explanation())
			if min := rule.MinVersion(); min != nil {
				fmt.Fprintf(out, "\nApplies to Nix %s and newer.\n", min)
			}
			return nil
		},
	}
}
