package lint

import (
	"bytes"
	"errors"

	"github.com/yaklabco/nixlint/pkg/fix"
)

// MaxFixPasses bounds the lint-apply-relint loop. Fixes can cascade
// (removing a binding may empty the surrounding let) so a single pass
// is not enough, but a rewrite that has not converged after this many
// rounds is oscillating and must stop.
const MaxFixPasses = 10

// FixOutcome is the result of running the fix pipeline over one buffer.
type FixOutcome struct {
	// Content is the rewritten buffer. Equal to the input when no fix
	// applied.
	Content []byte

	// Passes is how many rewrite rounds ran.
	Passes int

	// Applied counts suggestions that were spliced into the buffer.
	Applied int

	// Remaining holds the reports still firing after the final pass,
	// including everything that never had a suggestion.
	Remaining []*Report
}

// Changed reports whether the pipeline modified the buffer.
func (o FixOutcome) Changed() bool {
	return o.Applied > 0
}

// Fix repeatedly lints content and applies the suggested rewrites until
// no fixable report remains or MaxFixPasses is reached. Each pass
// re-parses the rewritten buffer, so positions always refer to the
// current text.
//
// Buffers with syntax errors are returned untouched together with
// their reports. Rewriting a tree the parser only partially understood
// would risk destroying code.
func (e *Engine) Fix(content []byte, sess *Session) FixOutcome {
	out := FixOutcome{Content: content}

	for out.Passes < MaxFixPasses {
		result := e.LintSource(out.Content, sess)
		out.Remaining = result.Reports

		if result.HasSyntaxErrors() {
			return out
		}

		edits, applied := collectEdits(result.Reports, len(out.Content))
		if len(edits) == 0 {
			return out
		}

		// collectEdits already validated and sorted the batch.
		next := fix.Apply(out.Content, edits)
		if bytes.Equal(next, out.Content) {
			// A rule suggested a rewrite identical to the source.
			// Stop rather than loop forever.
			return out
		}

		out.Content = next
		out.Applied += applied
		out.Passes++
	}

	// Gave up before converging; report against the final buffer.
	out.Remaining = e.LintSource(out.Content, sess).Reports
	return out
}

// collectEdits turns report suggestions into a non-overlapping edit
// batch. Reports whose edits would overlap the batch built so far are
// deferred; the next pass sees the rewritten buffer and retries them.
func collectEdits(reports []*Report, contentLen int) (edits []fix.Edit, applied int) {
	for _, rep := range reports {
		var repEdits []fix.Edit
		for _, d := range rep.Diagnostics {
			if d.Suggestion == nil {
				continue
			}
			repEdits = append(repEdits, fix.Edit{
				Start:   d.Suggestion.At.Start,
				End:     d.Suggestion.At.End,
				NewText: d.Suggestion.FixText(),
			})
		}
		if len(repEdits) == 0 {
			continue
		}

		candidate := append(append([]fix.Edit(nil), edits...), repEdits...)
		prepared, err := fix.Prepare(candidate, contentLen)
		if err != nil {
			var overlap *fix.OverlappingFixesError
			if errors.As(err, &overlap) {
				continue
			}
			// Out-of-bounds edits point at a rule bug; skip the report.
			continue
		}
		edits = prepared
		applied += len(repEdits)
	}
	return edits, applied
}
