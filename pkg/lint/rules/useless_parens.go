package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// UselessParensRule flags parentheses that change nothing: around
// binding values, around pattern default values, around the body of a
// let-in, and around expressions that are already atomic.
type UselessParensRule struct {
	lint.Meta
}

// NewUselessParensRule creates the useless parens rule.
func NewUselessParensRule() *UselessParensRule {
	return &UselessParensRule{
		Meta: lint.NewMeta(
			"useless_parens",
			"Useless parentheses",
			8,
			syntax.NodeKeyValue,
			syntax.NodePatEntry,
			syntax.NodeLetIn,
			syntax.NodeParen,
		).WithExplanation(
			"Parentheses around a binding value, a pattern default, a " +
				"let body, or an already atomic expression have no effect " +
				"on parsing and only add noise.",
		),
	}
}

// Validate fires once per offending parenthesis pair.
func (r *UselessParensRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	switch node.Kind {
	case syntax.NodeKeyValue:
		kv, _ := syntax.CastKeyValue(node)
		return r.suggestUnwrap(kv.Value(), "Useless parentheses around value in binding")
	case syntax.NodePatEntry:
		return r.suggestUnwrap(patEntryDefault(node), "Useless parentheses around pattern default value")
	case syntax.NodeLetIn:
		letIn, _ := syntax.CastLetIn(node)
		return r.suggestUnwrap(letIn.Body(), "Useless parentheses around body of let expression")
	case syntax.NodeParen:
		// The contexts above already report on this paren through its
		// parent; avoid a duplicate finding.
		if p := node.Parent; p != nil {
			switch p.Kind {
			case syntax.NodeKeyValue, syntax.NodePatEntry, syntax.NodeLetIn:
				return nil
			}
		}
		paren, _ := syntax.CastParen(node)
		inner := paren.Inner()
		if inner == nil {
			return nil
		}
		switch inner.Kind {
		case syntax.NodeParen, syntax.NodeIdent, syntax.NodeAttrSet, syntax.NodeList, syntax.NodeString, syntax.NodeLiteral:
			return r.suggestUnwrap(node, "Useless parentheses around expression")
		}
	}
	return nil
}

// suggestUnwrap builds a report replacing the parenthesized node with
// its inner expression, or returns nil when n is not parenthesized.
func (r *UselessParensRule) suggestUnwrap(n *syntax.Node, message string) *lint.Report {
	paren, ok := syntax.CastParen(n)
	if !ok {
		return nil
	}
	inner := paren.Inner()
	if inner == nil {
		return nil
	}

	at := n.Range
	replacement := syntax.Fragment(inner.Text())
	return r.Report().Suggest(at, message, lint.NewSuggestion(at, replacement))
}

// patEntryDefault returns the default expression of a pattern entry
// (`name ? default`), or nil when the entry has no default.
func patEntryDefault(entry *syntax.Node) *syntax.Node {
	sawQuestion := false
	for child := entry.FirstChild; child != nil; child = child.Next {
		if child.Kind == syntax.TokenQuestion {
			sawQuestion = true
			continue
		}
		if sawQuestion && !child.IsToken() {
			return child
		}
	}
	return nil
}
