package lint

import (
	"slices"

	"github.com/Masterminds/semver/v3"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

// Rule is the behavioral half of the lint contract: given one syntax
// element and the session, return nil when the rule does not fire, or
// a report describing violations found at or within the element.
//
// Implementations must be side-effect free, must not mutate the tree
// or the session, and must be safe for concurrent use.
type Rule interface {
	Validate(node *syntax.Node, sess *Session) *Report
}

// Metadata is the identity half of the lint contract. MatchKind must
// agree with MatchWith: it lists exactly the kinds for which MatchWith
// returns true, so the registry can be built without probing every
// kind at runtime.
type Metadata interface {
	// Name returns the rule's human-readable name (e.g. "manual-inherit").
	Name() string

	// Note returns the one-line summary copied onto reports.
	Note() string

	// Code returns the stable numeric identifier, unique per rule.
	Code() uint32

	// Report builds an empty report pre-filled with this rule's note
	// and code.
	Report() *Report

	// MatchWith returns true when the rule applies to elements of the
	// given kind.
	MatchWith(kind syntax.Kind) bool

	// MatchKind returns the complete set of kinds MatchWith accepts.
	MatchKind() []syntax.Kind

	// MinVersion returns the minimum Nix language version the rule's
	// advice applies to, or nil when unconditional.
	MinVersion() *semver.Version
}

// Lint combines behavior and identity. Every registered rule satisfies
// it.
type Lint interface {
	Metadata
	Rule

	// Explanation returns the rule's long-form description.
	Explanation() string
}

// defaultExplanation is used for rules without a long-form description.
const defaultExplanation = "no explanation found"

// Meta is an embeddable Metadata implementation. Rule types embed it
// and implement only Validate.
type Meta struct {
	name        string
	note        string
	code        uint32
	kinds       []syntax.Kind
	explanation string
	minVersion  *semver.Version
}

// NewMeta creates rule metadata matching the given kinds.
func NewMeta(name, note string, code uint32, kinds ...syntax.Kind) Meta {
	return Meta{name: name, note: note, code: code, kinds: kinds}
}

// WithExplanation attaches a long-form description.
func (m Meta) WithExplanation(explanation string) Meta {
	m.explanation = explanation
	return m
}

// WithMinVersion gates the rule on a minimum Nix version. The version
// string is fixed at rule definition time, so a bad one is a
// programmer error and panics.
func (m Meta) WithMinVersion(version string) Meta {
	m.minVersion = semver.MustParse(version)
	return m
}

// Name returns the rule name.
func (m Meta) Name() string { return m.name }

// Note returns the rule's one-line summary.
func (m Meta) Note() string { return m.note }

// Code returns the rule's numeric identifier.
func (m Meta) Code() uint32 { return m.code }

// Report builds an empty report carrying this rule's identity.
func (m Meta) Report() *Report {
	return NewReport(m.note, m.code)
}

// MatchWith returns true when kind is in the rule's match set.
func (m Meta) MatchWith(kind syntax.Kind) bool {
	return slices.Contains(m.kinds, kind)
}

// MatchKind returns the rule's complete match set.
func (m Meta) MatchKind() []syntax.Kind {
	return slices.Clone(m.kinds)
}

// MinVersion returns the minimum supported Nix version, or nil.
func (m Meta) MinVersion() *semver.Version {
	return m.minVersion
}

// Explanation returns the long-form description, or a placeholder.
func (m Meta) Explanation() string {
	if m.explanation == "" {
		return defaultExplanation
	}
	return m.explanation
}
