package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkPreOrder(t *testing.T) {
	t.Parallel()

	tree := Parse([]byte("a.b"))
	require.False(t, tree.HasErrors())

	var kinds []Kind
	err := Walk(tree.Root, func(n *Node) error {
		kinds = append(kinds, n.Kind)
		return nil
	})
	require.NoError(t, err)

	// Root before the select, the select before its leaves.
	assert.Equal(t, []Kind{
		NodeRoot, NodeSelect, NodeIdent, TokenIdent, TokenDot, NodeIdent, TokenIdent,
	}, kinds)
}

func TestWalkStopsOnError(t *testing.T) {
	t.Parallel()

	tree := Parse([]byte("{ a = 1; b = 2; }"))
	require.False(t, tree.HasErrors())

	boom := errors.New("boom")
	visited := 0
	err := Walk(tree.Root, func(n *Node) error {
		visited++
		if n.Kind == NodeKeyValue {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	total := 0
	_ = Walk(tree.Root, func(*Node) error { total++; return nil })
	assert.Less(t, visited, total)
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	tree := Parse([]byte("{ a = 1; b = 2; c = 3; }"))
	require.False(t, tree.HasErrors())

	bindings := FindByKind(tree.Root, NodeKeyValue)
	require.Len(t, bindings, 3)

	names := make([]string, 0, len(bindings))
	for _, kv := range bindings {
		key := kv.FirstChildOfKind(NodeKey)
		require.NotNil(t, key)
		names = append(names, key.Text())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	tree := Parse([]byte("let x = true; in x"))
	require.False(t, tree.HasErrors())

	lit := FindFirst(tree.Root, func(n *Node) bool {
		return n.Kind == TokenIdent && n.Text() == "true"
	})
	require.NotNil(t, lit)
	assert.Equal(t, "true", lit.Text())

	missing := FindFirst(tree.Root, func(n *Node) bool {
		return n.Kind == NodeIfElse
	})
	assert.Nil(t, missing)
}

func TestFindAllIncludesNested(t *testing.T) {
	t.Parallel()

	tree := Parse([]byte("{ a = { b = { c = 1; }; }; }"))
	require.False(t, tree.HasErrors())

	sets := FindByKind(tree.Root, NodeAttrSet)
	assert.Len(t, sets, 3)
}
