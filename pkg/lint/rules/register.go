package rules

import "github.com/yaklabco/nixlint/pkg/lint"

// All returns one instance of every built-in rule, in code order.
func All() []lint.Lint {
	return []lint.Lint{
		NewBoolComparisonRule(),    // 1
		NewEmptyLetInRule(),        // 2
		NewManualInheritRule(),     // 3
		NewManualInheritFromRule(), // 4
		NewEtaReductionRule(),      // 7
		NewUselessParensRule(),     // 8
		NewEmptyPatternRule(),      // 10
		NewDeprecatedIsNullRule(),  // 13
		NewEmptyInheritRule(),      // 14
		NewFasterGroupByRule(),     // 15
	}
}

// init registers the built-in rules with the process-wide registry.
func init() {
	for _, l := range All() {
		lint.Register(l)
	}
}
