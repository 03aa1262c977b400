package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// EmptyPatternRule flags lambda patterns that match nothing, `{}: body`.
// Such a function still insists on being called with a set; `_: body`
// states the same indifference without the restriction.
type EmptyPatternRule struct {
	lint.Meta
}

// NewEmptyPatternRule creates the empty pattern rule.
func NewEmptyPatternRule() *EmptyPatternRule {
	return &EmptyPatternRule{
		Meta: lint.NewMeta(
			"empty_pattern",
			"Found empty pattern in function argument",
			10,
			syntax.NodePattern,
		).WithExplanation(
			"An empty destructuring pattern binds nothing but still " +
				"requires the caller to pass an attribute set. Use `_` when " +
				"the argument is ignored.",
		),
	}
}

// Validate fires on patterns with no entries, no ellipsis, and no
// @-binding. A pattern with ellipsis deliberately restricts the
// argument to sets and is kept.
func (r *EmptyPatternRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	pattern, ok := syntax.CastPattern(node)
	if !ok {
		return nil
	}
	if len(pattern.Entries()) != 0 || pattern.HasEllipsis() || pattern.Bind() != nil {
		return nil
	}

	at := node.Range
	replacement := syntax.MakeIdent("_")
	message := "This pattern is empty, use `_` instead"
	return r.Report().Suggest(at, message, lint.NewSuggestion(at, replacement))
}
