package lint

import (
	"fmt"
	"sync"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

// Dispatcher answers "which rules apply to an element of this kind".
// Both registry variants satisfy it.
type Dispatcher interface {
	RulesFor(kind syntax.Kind) []Lint
}

// Registry is a kind-indexed rule table: lookup for a node kind
// returns only the rules interested in that kind, in registration
// order. It is immutable after construction.
type Registry struct {
	byKind map[syntax.Kind][]Lint
	all    []Lint
}

// NewRegistry builds a registry from lints, indexing each rule under
// every kind in its MatchKind set. Registration order is preserved
// within each kind's list.
func NewRegistry(lints []Lint) *Registry {
	r := &Registry{
		byKind: make(map[syntax.Kind][]Lint),
		all:    make([]Lint, 0, len(lints)),
	}
	for _, l := range lints {
		r.all = append(r.all, l)
		for _, kind := range l.MatchKind() {
			r.byKind[kind] = append(r.byKind[kind], l)
		}
	}
	return r
}

// RulesFor returns the rules applicable to elements of kind, in
// registration order.
func (r *Registry) RulesFor(kind syntax.Kind) []Lint {
	return r.byKind[kind]
}

// All returns every registered rule in registration order.
func (r *Registry) All() []Lint {
	return r.all
}

// ByCode returns the rule with the given numeric code.
func (r *Registry) ByCode(code uint32) (Lint, bool) {
	for _, l := range r.all {
		if l.Code() == code {
			return l, true
		}
	}
	return nil, false
}

// ByName returns the rule with the given name.
func (r *Registry) ByName(name string) (Lint, bool) {
	for _, l := range r.all {
		if l.Name() == name {
			return l, true
		}
	}
	return nil, false
}

// Verify checks every rule's MatchKind against its MatchWith: each
// declared kind must be accepted, and no undeclared kind may be. Drift
// between the two is a defect in the rule module.
func (r *Registry) Verify() error {
	for _, l := range r.all {
		declared := make(map[syntax.Kind]bool, len(l.MatchKind()))
		for _, kind := range l.MatchKind() {
			declared[kind] = true
			if !l.MatchWith(kind) {
				return fmt.Errorf("rule %q declares kind %s in MatchKind but MatchWith rejects it",
					l.Name(), kind)
			}
		}
		for _, kind := range syntax.AllKinds() {
			if !declared[kind] && l.MatchWith(kind) {
				return fmt.Errorf("rule %q accepts kind %s in MatchWith but omits it from MatchKind",
					l.Name(), kind)
			}
		}
	}
	return nil
}

// FlatRegistry is the simple registry variant: a plain rule list that
// probes every rule's MatchWith on each lookup. It trades dispatch
// speed for simplicity and suits small rule counts.
type FlatRegistry []Lint

// RulesFor returns the rules whose MatchWith accepts kind, in list
// order.
func (f FlatRegistry) RulesFor(kind syntax.Kind) []Lint {
	var matched []Lint
	for _, l := range f {
		if l.MatchWith(kind) {
			matched = append(matched, l)
		}
	}
	return matched
}

// The process-wide default registry. Rule modules add themselves via
// Register during init; the table is built on the first Default call
// and is read-only for the remainder of the process.
var (
	registerMu   sync.Mutex
	registered   []Lint
	defaultOnce  sync.Once
	defaultReg   *Registry
	defaultBuilt bool
)

// Register adds a rule to the set assembled into the default registry.
// It must be called during package initialization, before the first
// Default call; later registration is a programmer error and panics.
func Register(l Lint) {
	registerMu.Lock()
	defer registerMu.Unlock()
	if defaultBuilt {
		panic(fmt.Sprintf("lint: rule %q registered after default registry was built", l.Name()))
	}
	registered = append(registered, l)
}

// Default returns the process-wide registry, building and verifying it
// exactly once. Metadata drift in any registered rule panics: it is a
// defect that would silently skip rules during dispatch.
func Default() *Registry {
	defaultOnce.Do(func() {
		registerMu.Lock()
		defaultBuilt = true
		lints := make([]Lint, len(registered))
		copy(lints, registered)
		registerMu.Unlock()

		defaultReg = NewRegistry(lints)
		if err := defaultReg.Verify(); err != nil {
			panic("lint: " + err.Error())
		}
	})
	return defaultReg
}
