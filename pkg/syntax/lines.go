package syntax

import "bytes"

// LineIndex maps byte offsets in a source buffer to 1-based line and
// column numbers, for presentation only. Columns count bytes.
type LineIndex struct {
	content []byte
	starts  []int // byte offset of each line start
}

// NewLineIndex builds an index over content.
func NewLineIndex(content []byte) *LineIndex {
	starts := []int{0}
	for i, c := range content {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{content: content, starts: starts}
}

// LineCount returns the number of lines, counting a trailing partial
// line.
func (li *LineIndex) LineCount() int {
	return len(li.starts)
}

// Position converts a byte offset into a 1-based (line, column) pair.
// Offsets past the end of the buffer map to the final position.
func (li *LineIndex) Position(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.content) {
		offset = len(li.content)
	}
	// Binary search for the last line start <= offset.
	lo, hi := 0, len(li.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - li.starts[lo] + 1
}

// Line returns the content of the given 1-based line, without its
// trailing newline. Out-of-range lines return "".
func (li *LineIndex) Line(line int) string {
	if line < 1 || line > len(li.starts) {
		return ""
	}
	start := li.starts[line-1]
	end := len(li.content)
	if line < len(li.starts) {
		end = li.starts[line] - 1
	}
	return string(bytes.TrimSuffix(li.content[start:end], []byte("\r")))
}
