package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// EmptyInheritRule flags inherit statements that name no attributes,
// `inherit;` and `inherit (set);`. The fix deletes the statement.
type EmptyInheritRule struct {
	lint.Meta
}

// NewEmptyInheritRule creates the empty inherit rule.
func NewEmptyInheritRule() *EmptyInheritRule {
	return &EmptyInheritRule{
		Meta: lint.NewMeta(
			"empty_inherit",
			"Found empty inherit statement",
			14,
			syntax.NodeInherit,
		).WithExplanation(
			"An inherit statement without attribute names binds nothing. " +
				"It is usually left behind when the last inherited name is " +
				"removed.",
		),
	}
}

// Validate fires on inherit statements with zero attribute names.
func (r *EmptyInheritRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	inherit, ok := syntax.CastInherit(node)
	if !ok {
		return nil
	}
	if len(inherit.Idents()) != 0 {
		return nil
	}

	at := node.Range
	message := "Remove this empty `inherit` statement"
	return r.Report().
		Suggest(at, message, lint.NewSuggestion(at, syntax.MakeEmptyBinding())).
		WithSeverity(lint.SeverityHint)
}
