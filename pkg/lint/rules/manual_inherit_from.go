package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// ManualInheritFromRule flags bindings of the form `a = b.a;`, which
// copy an attribute of the same name out of another set and are better
// written `inherit (b) a;`.
type ManualInheritFromRule struct {
	lint.Meta
}

// NewManualInheritFromRule creates the manual inherit-from rule.
func NewManualInheritFromRule() *ManualInheritFromRule {
	return &ManualInheritFromRule{
		Meta: lint.NewMeta(
			"manual_inherit_from",
			"Assignment instead of inherit from",
			4,
			syntax.NodeKeyValue,
		).WithExplanation(
			"Selecting an attribute into a binding of the same name is " +
				"what inherit-from is for. `inherit (b) a;` reads as intent " +
				"and scales to several attributes from the same set.",
		),
	}
}

// Validate fires on single-component bindings whose value selects an
// attribute with the same name as the key.
func (r *ManualInheritFromRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	kv, ok := syntax.CastKeyValue(node)
	if !ok {
		return nil
	}
	key, ok := singleIdentKey(kv)
	if !ok {
		return nil
	}
	sel, ok := syntax.CastSelect(kv.Value())
	if !ok {
		return nil
	}
	index, ok := syntax.CastIdent(sel.Index())
	if !ok {
		return nil
	}
	if key.Name() != index.Name() {
		return nil
	}
	set := sel.Set()
	if set == nil {
		return nil
	}

	at := node.Range
	replacement := syntax.MakeInheritFrom(set.Text(), key.Name())
	message := "This assignment is better written with `inherit`"
	return r.Report().Suggest(at, message, lint.NewSuggestion(at, replacement))
}
