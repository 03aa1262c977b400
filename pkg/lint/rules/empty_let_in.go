package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// EmptyLetInRule flags let-in expressions that declare no bindings.
// `let in x` is just `x`.
type EmptyLetInRule struct {
	lint.Meta
}

// NewEmptyLetInRule creates the empty let-in rule.
func NewEmptyLetInRule() *EmptyLetInRule {
	return &EmptyLetInRule{
		Meta: lint.NewMeta(
			"empty_let_in",
			"Useless let-in expression",
			2,
			syntax.NodeLetIn,
		).WithExplanation(
			"A let-in expression without bindings adds nothing to its " +
				"body. Usually it is a leftover from a removed binding.",
		),
	}
}

// Validate fires on let-in nodes with zero bindings.
func (r *EmptyLetInRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	letIn, ok := syntax.CastLetIn(node)
	if !ok {
		return nil
	}
	if len(letIn.Bindings()) != 0 {
		return nil
	}
	body := letIn.Body()
	if body == nil {
		return nil
	}

	at := node.Range
	replacement := syntax.Fragment(body.Text())
	message := "This let-in expression has no entries"
	return r.Report().Suggest(at, message, lint.NewSuggestion(at, replacement))
}
