package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

// stubRule is a minimal Lint implementation for registry tests.
type stubRule struct {
	Meta
}

func (r *stubRule) Validate(node *syntax.Node, sess *Session) *Report {
	return nil
}

func newStub(name string, code uint32, kinds ...syntax.Kind) *stubRule {
	return &stubRule{Meta: NewMeta(name, name+" note", code, kinds...)}
}

func TestRegistryDispatch(t *testing.T) {
	t.Parallel()

	letRule := newStub("let-rule", 1, syntax.NodeLetIn)
	binRule := newStub("bin-rule", 2, syntax.NodeBinOp)
	bothRule := newStub("both-rule", 3, syntax.NodeLetIn, syntax.NodeBinOp)

	reg := NewRegistry([]Lint{letRule, binRule, bothRule})

	assert.Equal(t, []Lint{letRule, bothRule}, reg.RulesFor(syntax.NodeLetIn))
	assert.Equal(t, []Lint{binRule, bothRule}, reg.RulesFor(syntax.NodeBinOp))
	assert.Empty(t, reg.RulesFor(syntax.NodeAttrSet))
	assert.Len(t, reg.All(), 3)
}

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry([]Lint{
		newStub("alpha", 10, syntax.NodeLetIn),
		newStub("beta", 20, syntax.NodeBinOp),
	})

	l, ok := reg.ByCode(20)
	require.True(t, ok)
	assert.Equal(t, "beta", l.Name())

	l, ok = reg.ByName("alpha")
	require.True(t, ok)
	assert.Equal(t, uint32(10), l.Code())

	_, ok = reg.ByCode(99)
	assert.False(t, ok)
	_, ok = reg.ByName("gamma")
	assert.False(t, ok)
}

func TestRegistryVerify(t *testing.T) {
	t.Parallel()

	t.Run("consistent metadata passes", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry([]Lint{newStub("ok", 1, syntax.NodeLetIn)})
		assert.NoError(t, reg.Verify())
	})

	t.Run("match drift fails", func(t *testing.T) {
		t.Parallel()

		reg := NewRegistry([]Lint{&driftRule{newStub("drift", 2, syntax.NodeLetIn)}})
		err := reg.Verify()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "drift")
	})
}

// driftRule accepts one more kind in MatchWith than MatchKind declares.
type driftRule struct {
	*stubRule
}

func (r *driftRule) MatchWith(kind syntax.Kind) bool {
	return r.stubRule.MatchWith(kind) || kind == syntax.NodeBinOp
}

func TestFlatRegistryMatchesIndexed(t *testing.T) {
	t.Parallel()

	lints := []Lint{
		newStub("a", 1, syntax.NodeLetIn),
		newStub("b", 2, syntax.NodeBinOp, syntax.NodeLetIn),
		newStub("c", 3, syntax.NodeApply),
	}
	indexed := NewRegistry(lints)
	flat := FlatRegistry(lints)

	for _, kind := range syntax.AllKinds() {
		assert.Equal(t, indexed.RulesFor(kind), flat.RulesFor(kind),
			"dispatch mismatch for kind %s", kind)
	}
}

func TestMetaAccessors(t *testing.T) {
	t.Parallel()

	m := NewMeta("faster-groupby", "Found lib.groupBy", 15, syntax.NodeSelect).
		WithExplanation("use builtins.groupBy instead").
		WithMinVersion("2.5")

	assert.Equal(t, "faster-groupby", m.Name())
	assert.Equal(t, "Found lib.groupBy", m.Note())
	assert.Equal(t, uint32(15), m.Code())
	assert.Equal(t, "use builtins.groupBy instead", m.Explanation())
	require.NotNil(t, m.MinVersion())
	assert.Equal(t, "2.5.0", m.MinVersion().String())
	assert.True(t, m.MatchWith(syntax.NodeSelect))
	assert.False(t, m.MatchWith(syntax.NodeLetIn))

	bare := NewMeta("bare", "note", 1)
	assert.Equal(t, "no explanation found", bare.Explanation())
	assert.Nil(t, bare.MinVersion())

	report := m.Report()
	assert.Equal(t, "Found lib.groupBy", report.Note)
	assert.Equal(t, uint32(15), report.Code)
}
