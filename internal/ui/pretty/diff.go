package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/nixlint/pkg/fix"
)

// FormatDiff renders a unified diff with per-line-kind coloring.
func (s *Styles) FormatDiff(d *fix.Diff) string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	path := strings.TrimPrefix(d.Path, "/")
	b.WriteString(s.DiffHeader.Render("--- a/"+path) + "\n")
	b.WriteString(s.DiffHeader.Render("+++ b/"+path) + "\n")

	for _, h := range d.Hunks {
		b.WriteString(s.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)) + "\n")
		for _, line := range h.Lines {
			switch line.Kind {
			case fix.DiffLineAdd:
				b.WriteString(s.DiffAdd.Render("+"+line.Content) + "\n")
			case fix.DiffLineRemove:
				b.WriteString(s.DiffRemove.Render("-"+line.Content) + "\n")
			default:
				b.WriteString(s.Dim.Render(" "+line.Content) + "\n")
			}
		}
	}
	return b.String()
}
