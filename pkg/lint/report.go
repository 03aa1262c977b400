// Package lint provides the rule engine for nixlint: the diagnostic
// and report data model, the rule contract, the kind-indexed registry,
// and the tree traversal driver.
package lint

import (
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// Severity indicates the importance of a report.
type Severity int

const (
	// SeverityWarn is the default severity.
	SeverityWarn Severity = iota

	// SeverityError marks reports that should fail a check run.
	SeverityError

	// SeverityHint marks purely stylistic advice.
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	case SeverityHint:
		return "hint"
	}
	return "unknown"
}

// Suggestion is a proposed fix: replace the original text at At with
// the rendering of Fix. Fix is a detached syntax fragment; the
// applicator performs no validation that it is legal in that position.
type Suggestion struct {
	// At is the span of original text to replace.
	At syntax.TextRange

	// Fix is the replacement fragment.
	Fix *syntax.Node
}

// NewSuggestion creates a suggestion replacing at with fix.
func NewSuggestion(at syntax.TextRange, fix *syntax.Node) Suggestion {
	return Suggestion{At: at, Fix: fix}
}

// FixText renders the replacement text.
func (s Suggestion) FixText() string {
	if s.Fix == nil {
		return ""
	}
	return s.Fix.Text()
}

// Diagnostic is one located complaint, with an optional fix. Immutable
// once built.
type Diagnostic struct {
	// At is the span of original text the complaint refers to.
	At syntax.TextRange

	// Message is the human-readable description of the issue.
	Message string

	// Suggestion optionally proposes a fix.
	Suggestion *Suggestion
}

// NewDiagnostic creates a diagnostic without a fix.
func NewDiagnostic(at syntax.TextRange, message string) Diagnostic {
	return Diagnostic{At: at, Message: message}
}

// NewDiagnosticWithFix creates a diagnostic carrying a suggested fix.
func NewDiagnosticWithFix(at syntax.TextRange, message string, suggestion Suggestion) Diagnostic {
	return Diagnostic{At: at, Message: message, Suggestion: &suggestion}
}

// HasFix returns true if this diagnostic carries a suggestion.
func (d Diagnostic) HasFix() bool {
	return d.Suggestion != nil
}

// Report is the aggregate output of one rule firing on one element.
// Note and Code identify the producing rule; Diagnostics are in
// insertion (traversal) order. Callers must keep diagnostic ranges of
// a single report non-overlapping; the builder does not enforce this.
type Report struct {
	// Note is the rule's one-line summary, copied onto every report
	// the rule produces.
	Note string

	// Code is the rule's stable numeric identifier.
	Code uint32

	// Severity is the report's severity level.
	Severity Severity

	// Diagnostics holds the located complaints, in insertion order.
	Diagnostics []Diagnostic
}

// NewReport starts an empty report with default severity.
func NewReport(note string, code uint32) *Report {
	return &Report{Note: note, Code: code, Severity: SeverityWarn}
}

// Diagnostic appends a complaint and returns the report for chaining.
func (r *Report) Diagnostic(at syntax.TextRange, message string) *Report {
	r.Diagnostics = append(r.Diagnostics, NewDiagnostic(at, message))
	return r
}

// Suggest appends a complaint with a fix and returns the report for
// chaining.
func (r *Report) Suggest(at syntax.TextRange, message string, suggestion Suggestion) *Report {
	r.Diagnostics = append(r.Diagnostics, NewDiagnosticWithFix(at, message, suggestion))
	return r
}

// WithSeverity overrides the default severity.
func (r *Report) WithSeverity(severity Severity) *Report {
	r.Severity = severity
	return r
}

// TotalSuggestionRange folds the ranges of all contained suggestions
// into their minimal cover. ok is false when no diagnostic carries a
// suggestion.
func (r *Report) TotalSuggestionRange() (cover syntax.TextRange, ok bool) {
	for _, d := range r.Diagnostics {
		if d.Suggestion == nil {
			continue
		}
		if !ok {
			cover = d.Suggestion.At
			ok = true
			continue
		}
		cover = cover.Cover(d.Suggestion.At)
	}
	return cover, ok
}

// TotalDiagnosticRange folds the ranges of all contained diagnostics
// into their minimal cover. ok is false for an empty report.
func (r *Report) TotalDiagnosticRange() (cover syntax.TextRange, ok bool) {
	for i, d := range r.Diagnostics {
		if i == 0 {
			cover = d.At
			continue
		}
		cover = cover.Cover(d.At)
	}
	return cover, len(r.Diagnostics) > 0
}

// HasSuggestions returns true if any diagnostic carries a fix.
func (r *Report) HasSuggestions() bool {
	for _, d := range r.Diagnostics {
		if d.Suggestion != nil {
			return true
		}
	}
	return false
}

// Apply rewrites src by applying every contained suggestion and
// returns the new text. Diagnostics without a suggestion are no-ops.
// Suggestions are applied highest start offset first, so that no
// replacement shifts the original offsets of one still to be applied.
func (r *Report) Apply(src []byte) []byte {
	ordered := make([]*Suggestion, 0, len(r.Diagnostics))
	for i := range r.Diagnostics {
		if s := r.Diagnostics[i].Suggestion; s != nil {
			ordered = append(ordered, s)
		}
	}
	// Insertion sort by descending start; reports carry few
	// diagnostics.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].At.Start > ordered[j-1].At.Start; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	out := append([]byte(nil), src...)
	for _, s := range ordered {
		replacement := []byte(s.FixText())
		tail := append([]byte(nil), out[s.At.End:]...)
		out = append(out[:s.At.Start], replacement...)
		out = append(out, tail...)
	}
	return out
}
