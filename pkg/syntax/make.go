package syntax

import (
	"fmt"
	"strings"
)

// Fragment constructors for rule fixes. Each builds a detached node by
// rendering source text and parsing it into its own private tree, so
// the result owns its buffer and renders independently of any file.

// Fragment parses src and returns the resulting top-level element.
// It panics on malformed input: fragment sources are generated by rule
// code, so a parse failure is a programmer error.
func Fragment(src string) *Node {
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		panic(fmt.Sprintf("syntax: invalid fragment %q: %v", src, tree.Errors[0]))
	}
	n := tree.Root.FirstNodeChild()
	if n == nil {
		panic(fmt.Sprintf("syntax: empty fragment %q", src))
	}
	return n
}

// bindingFragment parses src as the sole binding of a braced set and
// returns the binding node, detached from the enclosing braces.
func bindingFragment(src string) *Node {
	set := Fragment("{ " + src + " }")
	n := set.FirstNodeChild()
	if n == nil {
		panic(fmt.Sprintf("syntax: empty binding fragment %q", src))
	}
	return n
}

// MakeIdent builds a detached identifier node.
func MakeIdent(name string) *Node {
	return Fragment(name)
}

// MakeInherit builds "inherit a b;".
func MakeInherit(names ...string) *Node {
	return bindingFragment("inherit " + strings.Join(names, " ") + ";")
}

// MakeInheritFrom builds "inherit (from) a b;". The from argument is
// rendered verbatim and must be a valid expression.
func MakeInheritFrom(from string, names ...string) *Node {
	return bindingFragment("inherit (" + from + ") " + strings.Join(names, " ") + ";")
}

// MakeParen wraps an expression's source text in parentheses.
func MakeParen(inner string) *Node {
	return Fragment("(" + inner + ")")
}

// MakeUnaryNot builds "!expr", parenthesizing compound operands.
func MakeUnaryNot(operand *Node) *Node {
	text := operand.Text()
	switch operand.Kind {
	case NodeIdent, NodeParen, NodeLiteral, NodeSelect:
		return Fragment("!" + text)
	}
	return Fragment("!(" + text + ")")
}

// MakeBinOp builds "lhs op rhs" from rendered operand text.
func MakeBinOp(lhs, op, rhs string) *Node {
	return Fragment(lhs + " " + op + " " + rhs)
}

// MakeEmptyBinding builds a zero-length placeholder used by fixes that
// delete a binding outright.
func MakeEmptyBinding() *Node {
	tree := Parse(nil)
	root := tree.Root
	root.Range = EmptyRange(0)
	// An empty tree still reports a missing expression; discard that,
	// the fragment is only ever rendered, never inspected.
	tree.Errors = nil
	return root
}
