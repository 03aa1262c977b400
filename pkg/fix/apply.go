package fix

import "bytes"

// Apply splices a sorted, validated, non-overlapping batch of edits
// into content and returns the rewritten text. Edits must come from
// Prepare. Because the batch is applied in one pass over the original
// buffer, in ascending offset order, no replacement ever shifts the
// original offsets of an edit still to be applied - the result is
// byte-identical to applying the same batch highest-offset first.
func Apply(content []byte, edits []Edit) []byte {
	if len(edits) == 0 {
		return content
	}

	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - e.Len()
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		out.Write(content[cursor:e.Start])
		out.WriteString(e.NewText)
		cursor = e.End
	}
	out.Write(content[cursor:])

	return out.Bytes()
}
