package cli

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/nixlint/internal/logging"
	"github.com/yaklabco/nixlint/pkg/lint"

	_ "github.com/yaklabco/nixlint/pkg/lint/rules"
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Code       uint32 `json:"code"`
	Name       string `json:"name"`
	Note       string `json:"note"`
	MinVersion string `json:"minVersion,omitempty"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long:  `List all available lint rules with their codes and summaries.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			all := lint.Default().All()
			sort.Slice(all, func(i, j int) bool { return all[i].Code() < all[j].Code() })

			if format == "json" {
				return outputRulesJSON(all)
			}

			logger := logging.Default()
			logger.Info("available rules")
			for _, rule := range all {
				keyvals := []any{
					logging.FieldCode, rule.Code(),
				}
				if min := rule.MinVersion(); min != nil {
					keyvals = append(keyvals, logging.FieldNixVersion, min.String())
				}
				logger.Info(rule.Name()+": "+rule.Note(), keyvals...)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format: text or json")
	return cmd
}

func outputRulesJSON(all []lint.Lint) error {
	infos := make([]ruleInfo, 0, len(all))
	for _, rule := range all {
		info := ruleInfo{Code: rule.Code(), Name: rule.Name(), Note: rule.Note()}
		if min := rule.MinVersion(); min != nil {
			info.MinVersion = min.String()
		}
		infos = append(infos, info)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(infos)
}
