package rules

import (
	"fmt"

	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// BoolComparisonRule flags comparisons against the boolean literals
// true and false. `x == true` is `x`, and `x == false` is `!x`.
type BoolComparisonRule struct {
	lint.Meta
}

// NewBoolComparisonRule creates the bool comparison rule.
func NewBoolComparisonRule() *BoolComparisonRule {
	return &BoolComparisonRule{
		Meta: lint.NewMeta(
			"bool_comparison",
			"Unnecessary comparison with boolean",
			1,
			syntax.NodeBinOp,
		).WithExplanation(
			"Comparing an expression with the literals true or false is " +
				"redundant. The expression is already a boolean; compare " +
				"with == false only when you mean negation, which ! states " +
				"directly.",
		),
	}
}

// Validate fires on == and != where exactly one operand is a boolean
// literal.
func (r *BoolComparisonRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	binop, ok := syntax.CastBinOp(node)
	if !ok {
		return nil
	}
	op := binop.Operator()
	if op != syntax.TokenEqual && op != syntax.TokenNotEqual {
		return nil
	}

	lhs, rhs := binop.Lhs(), binop.Rhs()
	if lhs == nil || rhs == nil {
		return nil
	}

	var other *syntax.Node
	var literal bool
	switch {
	case isBoolLiteral(lhs) && !isBoolLiteral(rhs):
		other, literal = rhs, boolValue(lhs)
	case isBoolLiteral(rhs) && !isBoolLiteral(lhs):
		other, literal = lhs, boolValue(rhs)
	default:
		// `true == false` folds to a constant; leave it alone, the
		// author probably wants to see it.
		return nil
	}

	// `x == true` and `x != false` keep the value; the other two
	// combinations negate it.
	keep := literal == (op == syntax.TokenEqual)
	var replacement *syntax.Node
	if keep {
		replacement = syntax.Fragment(other.Text())
	} else {
		replacement = syntax.MakeUnaryNot(other)
	}

	at := node.Range
	message := fmt.Sprintf("Comparing `%s` with boolean literal `%t`", other.Text(), literal)
	return r.Report().Suggest(at, message, lint.NewSuggestion(at, replacement))
}

func isBoolLiteral(n *syntax.Node) bool {
	id, ok := syntax.CastIdent(n)
	if !ok {
		return false
	}
	name := id.Name()
	return name == "true" || name == "false"
}

func boolValue(n *syntax.Node) bool {
	id, _ := syntax.CastIdent(n)
	return id.Name() == "true"
}
