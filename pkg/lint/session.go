package lint

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DefaultNixVersion is assumed when no target version is configured.
const DefaultNixVersion = "2.4"

// Session carries cross-node information for one lint run: the file
// being linted and the Nix language version the advice should target.
// The driver passes it through to every rule invocation unchanged and
// never inspects it.
type Session struct {
	path    string
	version *semver.Version
}

// NewSession creates a session for the given file path. nixVersion may
// be empty, in which case DefaultNixVersion is used.
func NewSession(path, nixVersion string) (*Session, error) {
	if nixVersion == "" {
		nixVersion = DefaultNixVersion
	}
	version, err := semver.NewVersion(nixVersion)
	if err != nil {
		return nil, fmt.Errorf("parse nix version %q: %w", nixVersion, err)
	}
	return &Session{path: path, version: version}, nil
}

// Path returns the file path being linted.
func (s *Session) Path() string {
	return s.path
}

// Version returns the target Nix language version.
func (s *Session) Version() *semver.Version {
	return s.version
}

// Supports returns true if the session's target version is at least
// min. A nil min means the feature is unconditional.
func (s *Session) Supports(min *semver.Version) bool {
	if min == nil {
		return true
	}
	return !s.version.LessThan(min)
}
