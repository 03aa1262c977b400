// Package config defines nixlint's configuration model and the loader
// that discovers and decodes project config files.
package config

import (
	"fmt"
	"runtime"
)

// Format selects the diagnostic output format.
type Format string

const (
	// FormatPretty renders styled diagnostics with source context.
	FormatPretty Format = "pretty"

	// FormatErrFmt renders one machine-readable line per diagnostic.
	FormatErrFmt Format = "errfmt"

	// FormatJSON renders the full report structure as JSON.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name from a flag or config file.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPretty, FormatErrFmt, FormatJSON:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown output format %q (expected pretty, errfmt, or json)", name)
}

// Config is the resolved configuration for one run. File-backed fields
// carry both yaml and toml tags; the remaining fields come from CLI
// flags only.
type Config struct {
	// Disabled lists rule names to turn off.
	Disabled []string `yaml:"disabled" toml:"disabled"`

	// Ignore holds glob patterns for paths to skip during discovery.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	// NixVersion is the Nix language version rules are gated on.
	NixVersion string `yaml:"nix_version" toml:"nix_version"`

	// Jobs is the number of files linted concurrently.
	Jobs int `yaml:"jobs" toml:"jobs"`

	// CLI-only options, never read from config files.

	// Fix rewrites files in place.
	Fix bool `yaml:"-" toml:"-"`

	// DryRun previews fixes as diffs without writing.
	DryRun bool `yaml:"-" toml:"-"`

	// Format selects the output format.
	Format Format `yaml:"-" toml:"-"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		NixVersion: "2.4",
		Jobs:       runtime.NumCPU(),
		Format:     FormatPretty,
	}
}

// IsDisabled reports whether the named rule is turned off.
func (c *Config) IsDisabled(name string) bool {
	for _, d := range c.Disabled {
		if d == name {
			return true
		}
	}
	return false
}

// Validate checks invariants that the decoders cannot express.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}
