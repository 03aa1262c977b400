package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

// countingRule fires once per matched element and tallies invocations.
type countingRule struct {
	Meta
	calls int
}

func (r *countingRule) Validate(node *syntax.Node, sess *Session) *Report {
	r.calls++
	return r.Report().Diagnostic(node.Range, "matched")
}

func testSession(t *testing.T) *Session {
	t.Helper()
	sess, err := NewSession("test.nix", "")
	require.NoError(t, err)
	return sess
}

func TestEngineDispatchesByKind(t *testing.T) {
	t.Parallel()

	rule := &countingRule{Meta: NewMeta("count-lets", "note", 1, syntax.NodeLetIn)}
	engine := NewEngine(NewRegistry([]Lint{rule}))

	result := engine.LintSource([]byte("let a = let b = 1; in b; in a"), testSession(t))
	require.False(t, result.Tree.HasErrors())

	assert.Equal(t, 2, rule.calls)
	require.Len(t, result.Reports, 2)
	assert.True(t, result.HasIssues())
	assert.False(t, result.HasSyntaxErrors())
}

func TestEngineSkipsNonFiringRules(t *testing.T) {
	t.Parallel()

	rule := &countingRule{Meta: NewMeta("count-ifs", "note", 1, syntax.NodeIfElse)}
	engine := NewEngine(NewRegistry([]Lint{rule}))

	result := engine.LintSource([]byte("{ a = 1; }"), testSession(t))
	assert.Equal(t, 0, rule.calls)
	assert.False(t, result.HasIssues())
}

func TestEngineVersionGating(t *testing.T) {
	t.Parallel()

	gated := &countingRule{
		Meta: NewMeta("gated", "note", 1, syntax.NodeLetIn).WithMinVersion("2.5"),
	}
	engine := NewEngine(NewRegistry([]Lint{gated}))

	old, err := NewSession("test.nix", "2.4")
	require.NoError(t, err)
	engine.LintSource([]byte("let a = 1; in a"), old)
	assert.Equal(t, 0, gated.calls, "rule must not run below its minimum version")

	current, err := NewSession("test.nix", "2.5")
	require.NoError(t, err)
	engine.LintSource([]byte("let a = 1; in a"), current)
	assert.Equal(t, 1, gated.calls)
}

func TestEngineParseErrorsBecomeReports(t *testing.T) {
	t.Parallel()

	engine := NewEngine(NewRegistry(nil))

	result := engine.LintSource([]byte("{ a = ; }"), testSession(t))
	require.True(t, result.HasIssues())
	assert.True(t, result.HasSyntaxErrors())
	for _, rep := range result.Reports {
		assert.Equal(t, SyntaxErrorCode, rep.Code)
		assert.Equal(t, SeverityError, rep.Severity)
	}
}

func TestFileResultFixableCount(t *testing.T) {
	t.Parallel()

	fixable := NewReport("a", 1).Suggest(syntax.NewRange(0, 1), "m",
		NewSuggestion(syntax.NewRange(0, 1), syntax.MakeIdent("x")))
	plain := NewReport("b", 2).Diagnostic(syntax.NewRange(0, 1), "m")

	fr := &FileResult{Reports: []*Report{fixable, plain}}
	assert.Equal(t, 1, fr.FixableCount())
}
