package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/lint/rules"
)

func fixEngine(t *testing.T) (*lint.Engine, *lint.Session) {
	t.Helper()
	sess, err := lint.NewSession("test.nix", "")
	require.NoError(t, err)
	return lint.NewEngine(lint.NewRegistry(rules.All())), sess
}

func TestFixManualInherit(t *testing.T) {
	t.Parallel()

	engine, sess := fixEngine(t)
	out := engine.Fix([]byte("{ x = x; }"), sess)

	assert.True(t, out.Changed())
	assert.Equal(t, "{ inherit x; }", string(out.Content))
	assert.Empty(t, out.Remaining)
}

func TestFixManualInheritFrom(t *testing.T) {
	t.Parallel()

	engine, sess := fixEngine(t)
	out := engine.Fix([]byte("{ a = b.a; }"), sess)

	assert.True(t, out.Changed())
	assert.Equal(t, "{ inherit (b) a; }", string(out.Content))
	assert.Empty(t, out.Remaining)
}

func TestFixIsIdempotent(t *testing.T) {
	t.Parallel()

	engine, sess := fixEngine(t)
	first := engine.Fix([]byte("{ x = x; a = b.a; }"), sess)
	require.True(t, first.Changed())

	second := engine.Fix(first.Content, sess)
	assert.False(t, second.Changed())
	assert.Equal(t, string(first.Content), string(second.Content))
}

func TestFixLeavesBrokenBufferAlone(t *testing.T) {
	t.Parallel()

	src := "{ x = x; oops = ; }"
	engine, sess := fixEngine(t)
	out := engine.Fix([]byte(src), sess)

	assert.False(t, out.Changed())
	assert.Equal(t, src, string(out.Content))
	assert.NotEmpty(t, out.Remaining)
}

func TestFixCascades(t *testing.T) {
	t.Parallel()

	// The isNull rewrite leaves a binding the empty-let rule cannot see
	// until the next pass re-parses. Convergence takes several rounds.
	engine, sess := fixEngine(t)
	out := engine.Fix([]byte("let in { b = isNull a; }"), sess)

	assert.True(t, out.Changed())
	assert.Equal(t, "{ b = a == null; }", string(out.Content))
	assert.GreaterOrEqual(t, out.Passes, 1)
	assert.Empty(t, out.Remaining)
}

func TestFixBoolComparison(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "eq true keeps operand", in: "{ a = x == true; }", want: "{ a = x; }"},
		{name: "eq false negates", in: "{ a = x == false; }", want: "{ a = !x; }"},
		{name: "neq true negates", in: "{ a = x != true; }", want: "{ a = !x; }"},
		{name: "neq false keeps operand", in: "{ a = x != false; }", want: "{ a = x; }"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			engine, sess := fixEngine(t)
			out := engine.Fix([]byte(tc.in), sess)
			assert.Equal(t, tc.want, string(out.Content))
			assert.Empty(t, out.Remaining)
		})
	}
}

func TestFixEmptyLetIn(t *testing.T) {
	t.Parallel()

	engine, sess := fixEngine(t)
	out := engine.Fix([]byte("let in x"), sess)

	assert.True(t, out.Changed())
	assert.Equal(t, "x", string(out.Content))
}
