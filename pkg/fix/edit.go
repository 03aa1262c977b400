// Package fix applies suggested fixes to source text as byte-range
// edits. All edit offsets refer to the original, unmodified buffer;
// Apply splices every edit in one pass so no applied replacement can
// shift the offsets of another.
package fix

// Edit is a single text replacement: the bytes at [Start, End) of the
// original buffer are replaced by NewText.
type Edit struct {
	// Start is the byte index where the edit begins (inclusive).
	Start int

	// End is the byte index where the edit ends (exclusive).
	End int

	// NewText is the replacement text.
	NewText string
}

// Len returns the length of the replaced span.
func (e Edit) Len() int {
	return e.End - e.Start
}
