package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragment(t *testing.T) {
	t.Parallel()

	n := Fragment("a + b")
	require.NotNil(t, n)
	assert.Equal(t, NodeBinOp, n.Kind)
	assert.Equal(t, "a + b", n.Text())
}

func TestFragmentPanicsOnBadSource(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Fragment("{ a = ; }") })
	assert.Panics(t, func() { Fragment("") })
}

func TestMakeIdent(t *testing.T) {
	t.Parallel()

	n := MakeIdent("pkgs")
	assert.Equal(t, NodeIdent, n.Kind)
	assert.Equal(t, "pkgs", n.Text())
}

func TestMakeInherit(t *testing.T) {
	t.Parallel()

	n := MakeInherit("x")
	assert.Equal(t, NodeInherit, n.Kind)
	assert.Equal(t, "inherit x;", n.Text())

	n = MakeInherit("a", "b")
	assert.Equal(t, "inherit a b;", n.Text())
}

func TestMakeInheritFrom(t *testing.T) {
	t.Parallel()

	n := MakeInheritFrom("lib", "mkIf")
	assert.Equal(t, NodeInherit, n.Kind)
	assert.Equal(t, "inherit (lib) mkIf;", n.Text())
}

func TestMakeUnaryNot(t *testing.T) {
	t.Parallel()

	ident := Fragment("ready")
	assert.Equal(t, "!ready", MakeUnaryNot(ident).Text())

	compound := Fragment("a && b")
	assert.Equal(t, "!(a && b)", MakeUnaryNot(compound).Text())

	sel := Fragment("cfg.enable")
	assert.Equal(t, "!cfg.enable", MakeUnaryNot(sel).Text())
}

func TestMakeBinOp(t *testing.T) {
	t.Parallel()

	n := MakeBinOp("x", "==", "null")
	assert.Equal(t, NodeBinOp, n.Kind)
	assert.Equal(t, "x == null", n.Text())
}

func TestMakeEmptyBinding(t *testing.T) {
	t.Parallel()

	n := MakeEmptyBinding()
	assert.Equal(t, "", n.Text())
	assert.Equal(t, 0, n.Range.Len())
}
