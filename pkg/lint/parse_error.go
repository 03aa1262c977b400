package lint

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

// SyntaxErrorCode is the report code shared by all parse-error
// reports. Rule codes start at 1.
const SyntaxErrorCode uint32 = 0

// syntaxErrorNote is the note carried by parse-error reports.
const syntaxErrorNote = "Syntax error"

// ReportFromParseError converts a parser-level failure into the same
// report shape rules produce, so syntax errors and lint violations
// share one reporting pipeline. Error kinds with no natural location
// map to the empty range at offset zero.
//
// The mapping must stay exhaustive as the parser's error taxonomy
// evolves: an unknown kind is an internal logic error and panics.
func ReportFromParseError(perr syntax.ParseError) *Report {
	var at syntax.TextRange
	switch perr.Kind {
	case syntax.ErrUnexpected,
		syntax.ErrUnexpectedExtra,
		syntax.ErrUnexpectedWanted,
		syntax.ErrUnterminatedString:
		at = perr.At
	case syntax.ErrUnexpectedEOF, syntax.ErrUnexpectedEOFWanted:
		at = syntax.EmptyRange(0)
	default:
		panic(fmt.Sprintf("lint: unhandled parse error kind %d, the adapter mapping is incomplete", perr.Kind))
	}

	return NewReport(syntaxErrorNote, SyntaxErrorCode).
		Diagnostic(at, capitalize(perr.Error())).
		WithSeverity(SeverityError)
}

// capitalize upper-cases the first rune of s for presentation
// consistency.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
