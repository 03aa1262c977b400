package fix

import (
	"fmt"
	"strings"
)

// DiffLineKind classifies a line within a hunk.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged line shown for context.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line present only in the rewritten text.
	DiffLineAdd

	// DiffLineRemove is a line present only in the original text.
	DiffLineRemove
)

// DiffLine is one line of a hunk, without its +/-/space prefix.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// Hunk is a contiguous run of changes with surrounding context.
type Hunk struct {
	OriginalStart int // 1-based start line in the original
	OriginalCount int
	ModifiedStart int // 1-based start line in the rewrite
	ModifiedCount int
	Lines         []DiffLine
}

// Diff is a unified diff between an original buffer and its rewrite,
// used by dry-run mode to preview fixes without writing files.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// contextLines is how much unchanged context surrounds each hunk.
const contextLines = 3

// GenerateDiff computes a unified diff between original and modified.
// It returns nil when the contents are identical.
func GenerateDiff(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)
	if !hasChanges(ops) {
		return nil
	}

	d := &Diff{Path: path, Hunks: buildHunks(ops, origLines, modLines)}
	for _, h := range d.Hunks {
		for _, line := range h.Lines {
			switch line.Kind {
			case DiffLineAdd:
				d.Additions++
			case DiffLineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
		for _, line := range h.Lines {
			switch line.Kind {
			case DiffLineContext:
				b.WriteByte(' ')
			case DiffLineAdd:
				b.WriteByte('+')
			case DiffLineRemove:
				b.WriteByte('-')
			}
			b.WriteString(line.Content)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	// A trailing newline produces an empty final element; drop it so
	// it does not register as a phantom line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOp pairs a line with how it changed.
type diffOp struct {
	kind DiffLineKind
	line string
}

// diffOps computes a line-level edit script via longest common
// subsequence. Lint targets are small files, so the quadratic table is
// acceptable.
func diffOps(orig, mod []string) []diffOp {
	n, m := len(orig), len(mod)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var ops []diffOp
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, diffOp{kind: DiffLineContext, line: orig[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, diffOp{kind: DiffLineRemove, line: orig[i]})
			i++
		default:
			ops = append(ops, diffOp{kind: DiffLineAdd, line: mod[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, diffOp{kind: DiffLineRemove, line: orig[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, diffOp{kind: DiffLineAdd, line: mod[j]})
	}
	return ops
}

func hasChanges(ops []diffOp) bool {
	for _, op := range ops {
		if op.kind != DiffLineContext {
			return true
		}
	}
	return false
}

// buildHunks groups the edit script into hunks separated by more than
// 2*contextLines of unchanged lines.
func buildHunks(ops []diffOp, orig, mod []string) []Hunk {
	var hunks []Hunk
	var current *Hunk
	origLine, modLine := 1, 1
	pendingContext := 0

	flush := func() {
		if current == nil {
			return
		}
		// Trim trailing context down to the window.
		trailing := 0
		for trailing < len(current.Lines) && current.Lines[len(current.Lines)-1-trailing].Kind == DiffLineContext {
			trailing++
		}
		if drop := trailing - contextLines; drop > 0 {
			current.Lines = current.Lines[:len(current.Lines)-drop]
			current.OriginalCount -= drop
			current.ModifiedCount -= drop
		}
		hunks = append(hunks, *current)
		current = nil
	}

	for _, op := range ops {
		if op.kind == DiffLineContext {
			if current != nil {
				pendingContext++
				if pendingContext > contextLines*2 {
					flush()
					pendingContext = 0
				} else {
					current.Lines = append(current.Lines, DiffLine{Kind: DiffLineContext, Content: op.line})
					current.OriginalCount++
					current.ModifiedCount++
				}
			}
			origLine++
			modLine++
			continue
		}

		if current == nil {
			current = &Hunk{}
			// Open with up to contextLines of preceding context.
			lead := min(contextLines, origLine-1)
			lead = min(lead, modLine-1)
			current.OriginalStart = origLine - lead
			current.ModifiedStart = modLine - lead
			for k := lead; k > 0; k-- {
				current.Lines = append(current.Lines, DiffLine{
					Kind:    DiffLineContext,
					Content: orig[origLine-1-k],
				})
				current.OriginalCount++
				current.ModifiedCount++
			}
		}
		pendingContext = 0

		current.Lines = append(current.Lines, DiffLine{Kind: op.kind, Content: op.line})
		if op.kind == DiffLineRemove {
			current.OriginalCount++
			origLine++
		} else {
			current.ModifiedCount++
			modLine++
		}
	}
	flush()
	return hunks
}
