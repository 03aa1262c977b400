package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// FasterGroupByRule flags uses of lib.groupBy, which since Nix 2.5 has
// a builtin counterpart implemented natively.
type FasterGroupByRule struct {
	lint.Meta
}

// NewFasterGroupByRule creates the faster groupBy rule. It only fires
// when the session targets Nix 2.5 or newer, where builtins.groupBy
// exists.
func NewFasterGroupByRule() *FasterGroupByRule {
	return &FasterGroupByRule{
		Meta: lint.NewMeta(
			"faster_groupby",
			"Found lib.groupBy",
			15,
			syntax.NodeSelect,
		).WithMinVersion("2.5").WithExplanation(
			"Nix 2.5 gained builtins.groupBy, a native implementation of " +
				"lib.groupBy. The builtin is considerably faster on large " +
				"lists.",
		),
	}
}

// Validate fires on selections of groupBy from a set named lib.
func (r *FasterGroupByRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	sel, ok := syntax.CastSelect(node)
	if !ok {
		return nil
	}
	index, ok := syntax.CastIdent(sel.Index())
	if !ok || index.Name() != "groupBy" {
		return nil
	}
	set, ok := syntax.CastIdent(sel.Set())
	if !ok || set.Name() != "lib" {
		return nil
	}

	at := node.Range
	replacement := syntax.Fragment("builtins.groupBy")
	message := "Prefer `builtins.groupBy` over `lib.groupBy`"
	return r.Report().Suggest(at, message, lint.NewSuggestion(at, replacement))
}
