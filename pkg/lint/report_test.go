package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

func TestReportBuilder(t *testing.T) {
	t.Parallel()

	r := NewReport("Assignment instead of inherit", 3).
		Diagnostic(syntax.NewRange(2, 8), "first").
		Suggest(syntax.NewRange(10, 14), "second",
			NewSuggestion(syntax.NewRange(10, 14), syntax.MakeIdent("x")))

	assert.Equal(t, "Assignment instead of inherit", r.Note)
	assert.Equal(t, uint32(3), r.Code)
	assert.Equal(t, SeverityWarn, r.Severity)
	require.Len(t, r.Diagnostics, 2)

	assert.False(t, r.Diagnostics[0].HasFix())
	assert.True(t, r.Diagnostics[1].HasFix())
	assert.Equal(t, "x", r.Diagnostics[1].Suggestion.FixText())
	assert.True(t, r.HasSuggestions())
}

func TestReportWithSeverity(t *testing.T) {
	t.Parallel()

	r := NewReport("note", 14).WithSeverity(SeverityHint)
	assert.Equal(t, SeverityHint, r.Severity)
}

func TestTotalSuggestionRange(t *testing.T) {
	t.Parallel()

	t.Run("no suggestions", func(t *testing.T) {
		t.Parallel()

		r := NewReport("note", 1).Diagnostic(syntax.NewRange(0, 4), "msg")
		_, ok := r.TotalSuggestionRange()
		assert.False(t, ok)
	})

	t.Run("covers all suggestions", func(t *testing.T) {
		t.Parallel()

		r := NewReport("note", 1).
			Suggest(syntax.NewRange(8, 12), "a",
				NewSuggestion(syntax.NewRange(8, 12), syntax.MakeIdent("a"))).
			Diagnostic(syntax.NewRange(0, 40), "unfixed").
			Suggest(syntax.NewRange(20, 24), "b",
				NewSuggestion(syntax.NewRange(20, 24), syntax.MakeIdent("b")))

		cover, ok := r.TotalSuggestionRange()
		require.True(t, ok)
		assert.Equal(t, syntax.NewRange(8, 24), cover)
	})
}

func TestTotalDiagnosticRange(t *testing.T) {
	t.Parallel()

	r := NewReport("note", 1)
	_, ok := r.TotalDiagnosticRange()
	assert.False(t, ok)

	r.Diagnostic(syntax.NewRange(5, 9), "a").Diagnostic(syntax.NewRange(1, 3), "b")
	cover, ok := r.TotalDiagnosticRange()
	require.True(t, ok)
	assert.Equal(t, syntax.NewRange(1, 9), cover)
}

func TestReportApply(t *testing.T) {
	t.Parallel()

	src := []byte("aa bb cc")

	// Suggestions inserted in ascending order must still apply cleanly:
	// Apply processes them from the highest offset down.
	r := NewReport("note", 1).
		Suggest(syntax.NewRange(0, 2), "first",
			NewSuggestion(syntax.NewRange(0, 2), syntax.MakeIdent("xx"))).
		Suggest(syntax.NewRange(6, 8), "second",
			NewSuggestion(syntax.NewRange(6, 8), syntax.MakeIdent("zz")))

	out := r.Apply(src)
	assert.Equal(t, "xx bb zz", string(out))
	assert.Equal(t, "aa bb cc", string(src))
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "warn", SeverityWarn.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "hint", SeverityHint.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
