package syntax

import "fmt"

// TextRange is a half-open byte interval [Start, End) over the original
// source text. Ranges are only meaningful relative to the unmodified
// buffer the tree was parsed from.
type TextRange struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// NewRange creates a range covering [start, end).
func NewRange(start, end int) TextRange {
	return TextRange{Start: start, End: end}
}

// EmptyRange creates a zero-length range at the given offset.
func EmptyRange(offset int) TextRange {
	return TextRange{Start: offset, End: offset}
}

// Empty returns true if the range has zero length.
func (r TextRange) Empty() bool {
	return r.Start == r.End
}

// Len returns the length of the range in bytes.
func (r TextRange) Len() int {
	return r.End - r.Start
}

// Cover returns the minimal range enclosing both r and other.
func (r TextRange) Cover(other TextRange) TextRange {
	if other.Start < r.Start {
		r.Start = other.Start
	}
	if other.End > r.End {
		r.End = other.End
	}
	return r
}

// Contains returns true if other lies entirely within r.
func (r TextRange) Contains(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Overlaps returns true if r and other share at least one byte.
func (r TextRange) Overlaps(other TextRange) bool {
	return r.Start < other.End && other.Start < r.End
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
