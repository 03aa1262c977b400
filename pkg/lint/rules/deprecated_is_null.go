package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// DeprecatedIsNullRule flags calls to the deprecated builtin isNull.
// `isNull e` is `e == null`.
type DeprecatedIsNullRule struct {
	lint.Meta
}

// NewDeprecatedIsNullRule creates the deprecated isNull rule.
func NewDeprecatedIsNullRule() *DeprecatedIsNullRule {
	return &DeprecatedIsNullRule{
		Meta: lint.NewMeta(
			"deprecated_is_null",
			"Found usage of deprecated builtin isNull",
			13,
			syntax.NodeApply,
		).WithExplanation(
			"The builtin isNull has been deprecated since Nix 2.0. An " +
				"explicit comparison with null does the same thing.",
		),
	}
}

// Validate fires on applications whose function is the bare identifier
// isNull.
func (r *DeprecatedIsNullRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	apply, ok := syntax.CastApply(node)
	if !ok {
		return nil
	}
	fn, ok := syntax.CastIdent(apply.Fn())
	if !ok || fn.Name() != "isNull" {
		return nil
	}
	arg := apply.Arg()
	if arg == nil {
		return nil
	}

	at := node.Range
	replacement := syntax.MakeBinOp(arg.Text(), "==", "null")
	message := "Prefer `== null` over `isNull`"
	return r.Report().Suggest(at, message, lint.NewSuggestion(at, replacement))
}
