package lint

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

func TestReportFromParseErrorLocated(t *testing.T) {
	t.Parallel()

	tree := syntax.Parse([]byte("{ a = ; }"))
	require.True(t, tree.HasErrors())

	rep := ReportFromParseError(tree.Errors[0])
	assert.Equal(t, SyntaxErrorCode, rep.Code)
	assert.Equal(t, "Syntax error", rep.Note)
	assert.Equal(t, SeverityError, rep.Severity)
	require.Len(t, rep.Diagnostics, 1)

	d := rep.Diagnostics[0]
	assert.Equal(t, tree.Errors[0].At, d.At)
	assert.Greater(t, d.At.Len(), 0)
	assert.True(t, unicode.IsUpper(rune(d.Message[0])))
	assert.False(t, d.HasFix())
}

func TestReportFromParseErrorEOF(t *testing.T) {
	t.Parallel()

	tree := syntax.Parse([]byte("(x"))
	require.True(t, tree.HasErrors())

	var eofErr *syntax.ParseError
	for i := range tree.Errors {
		if tree.Errors[i].Kind == syntax.ErrUnexpectedEOFWanted {
			eofErr = &tree.Errors[i]
			break
		}
	}
	require.NotNil(t, eofErr, "unclosed paren should report a wanted-at-EOF error")

	rep := ReportFromParseError(*eofErr)
	require.Len(t, rep.Diagnostics, 1)
	assert.Equal(t, syntax.EmptyRange(0), rep.Diagnostics[0].At)
}

func TestReportFromParseErrorUnknownKindPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		ReportFromParseError(syntax.ParseError{Kind: syntax.ErrorKind(250)})
	})
}
