package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// ManualInheritRule flags bindings of the form `x = x;`, which restate
// an identifier already in scope and are better written `inherit x;`.
type ManualInheritRule struct {
	lint.Meta
}

// NewManualInheritRule creates the manual inherit rule.
func NewManualInheritRule() *ManualInheritRule {
	return &ManualInheritRule{
		Meta: lint.NewMeta(
			"manual_inherit",
			"Assignment instead of inherit",
			3,
			syntax.NodeKeyValue,
		).WithExplanation(
			"Assigning a name to itself copies a value from the enclosing " +
				"scope. The inherit keyword states that intent directly and " +
				"avoids repeating the name.",
		),
	}
}

// Validate fires on single-component bindings whose value is an
// identifier with the same name as the key.
func (r *ManualInheritRule) Validate(node *syntax.Node, _ *lint.Session) *lint.Report {
	kv, ok := syntax.CastKeyValue(node)
	if !ok {
		return nil
	}
	key, ok := singleIdentKey(kv)
	if !ok {
		return nil
	}
	value, ok := syntax.CastIdent(kv.Value())
	if !ok {
		return nil
	}
	if key.Name() != value.Name() {
		return nil
	}

	at := node.Range
	replacement := syntax.MakeInherit(key.Name())
	message := "This assignment is better written with `inherit`"
	return r.Report().Suggest(at, message, lint.NewSuggestion(at, replacement))
}

// singleIdentKey returns the key identifier of a binding whose attrpath
// has exactly one component and that component is an identifier.
func singleIdentKey(kv syntax.KeyValue) (syntax.Ident, bool) {
	path := kv.KeyPath()
	if len(path) != 1 {
		return syntax.Ident{}, false
	}
	return syntax.CastIdent(path[0])
}
