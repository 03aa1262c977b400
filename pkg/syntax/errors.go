package syntax

import (
	"fmt"
	"strings"
)

// ErrorKind enumerates the parse error taxonomy. The lint layer keeps
// an exhaustive mapping over these; adding a kind here requires
// extending that mapping.
type ErrorKind int

const (
	// ErrUnexpected marks a token that cannot start or continue the
	// construct being parsed.
	ErrUnexpected ErrorKind = iota

	// ErrUnexpectedExtra marks trailing input after a complete
	// top-level expression.
	ErrUnexpectedExtra

	// ErrUnexpectedWanted marks a token where specific kinds were
	// expected instead.
	ErrUnexpectedWanted

	// ErrUnexpectedEOF marks input that ended mid-construct.
	ErrUnexpectedEOF

	// ErrUnexpectedEOFWanted marks input that ended where specific
	// kinds were expected.
	ErrUnexpectedEOFWanted

	// ErrUnterminatedString marks a string literal with no closing
	// delimiter.
	ErrUnterminatedString
)

// ParseError is a located parse failure. EOF-class errors carry no
// meaningful location.
type ParseError struct {
	// Kind identifies the failure class.
	Kind ErrorKind

	// At is the byte range of the offending input. Unset for
	// EOF-class errors.
	At TextRange

	// Got is the kind of the offending token, when one exists.
	Got Kind

	// Wanted lists the kinds that would have been accepted, for the
	// *Wanted error classes.
	Wanted []Kind
}

// Error renders a human-readable message. The first character is
// deliberately lowercase; presentation layers capitalize as needed.
func (e ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpected:
		return fmt.Sprintf("unexpected %s at %s", e.Got, e.At)
	case ErrUnexpectedExtra:
		return fmt.Sprintf("unexpected input after expression at %s", e.At)
	case ErrUnexpectedWanted:
		return fmt.Sprintf("unexpected %s at %s, wanted any of %s", e.Got, e.At, kindList(e.Wanted))
	case ErrUnexpectedEOF:
		return "unexpected end of file"
	case ErrUnexpectedEOFWanted:
		return fmt.Sprintf("unexpected end of file, wanted any of %s", kindList(e.Wanted))
	case ErrUnterminatedString:
		return fmt.Sprintf("unterminated string starting at %s", e.At)
	}
	return fmt.Sprintf("unknown parse error at %s", e.At)
}

func kindList(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
