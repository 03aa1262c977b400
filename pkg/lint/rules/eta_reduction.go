package rules

import (
	"fmt"

	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// EtaReductionRule flags lambdas of the form `x: f x`, which forward
// their argument unchanged and can be replaced by `f`.
type EtaReductionRule struct {
	lint.Meta
}

// NewEtaReductionRule creates the eta reduction rule.
func NewEtaReductionRule() *EtaReductionRule {
	return &EtaReductionRule{
		Meta: lint.NewMeta(
			"eta_reduction",
			"This function expression is eta reducible",
			7,
			syntax.NodeLambda,
		).WithExplanation(
			"A lambda that only passes its argument through to another " +
				"function is the same function. Dropping the wrapper avoids " +
				"an allocation per call and reads simpler.",
		),
	}
}

// Validate fires on lambdas whose body applies some function to exactly
// the lambda's own parameter, provided the function itself does not
// capture the parameter.
func (r *EtaReductionRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	lambda, ok := syntax.CastLambda(node)
	if !ok {
		return nil
	}
	param, ok := syntax.CastIdent(lambda.Param())
	if !ok {
		return nil
	}
	apply, ok := syntax.CastApply(lambda.Body())
	if !ok {
		return nil
	}
	arg, ok := syntax.CastIdent(apply.Arg())
	if !ok {
		return nil
	}
	if param.Name() != arg.Name() {
		return nil
	}
	fn := apply.Fn()
	if fn == nil || mentionsIdent(fn, param.Name()) {
		return nil
	}

	at := node.Range
	replacement := syntax.Fragment(fn.Text())
	message := fmt.Sprintf("Found eta-reduction: `%s`", fn.Text())
	return r.Report().Suggest(at, message, lint.NewSuggestion(at, replacement))
}

// mentionsIdent reports whether the subtree contains an identifier
// token with the given name. Shadowing inside the subtree is not
// tracked, so this errs on the side of keeping the lambda.
func mentionsIdent(root *syntax.Node, name string) bool {
	return syntax.FindFirst(root, func(n *syntax.Node) bool {
		return n.Kind == syntax.TokenIdent && n.Text() == name
	}) != nil
}
