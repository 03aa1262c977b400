package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configFiles are the project config names searched for, in order of
// preference within one directory.
var configFiles = []string{
	".nixlint.toml",
	".nixlint.yaml",
	".nixlint.yml",
}

// vcsRootMarkers stop the upward search at a repository boundary.
var vcsRootMarkers = []string{".git", ".hg"}

// Discover walks upward from dir looking for a project config file.
// The search stops after the first directory containing a VCS marker.
// An empty path with a nil error means no config file exists.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		for _, name := range configFiles {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		atRoot := false
		for _, marker := range vcsRootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				atRoot = true
				break
			}
		}
		parent := filepath.Dir(dir)
		if atRoot || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load reads and decodes the config file at path on top of the
// defaults. The decoder is chosen by file extension; .toml files go
// through BurntSushi/toml, everything else through yaml.v3.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if strings.HasSuffix(path, ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.Jobs < 1 {
		cfg.Jobs = Default().Jobs
	}
	if cfg.NixVersion == "" {
		cfg.NixVersion = Default().NixVersion
	}
	return cfg, nil
}

// LoadOrDefault discovers and loads the project config for dir,
// falling back to defaults when none exists.
func LoadOrDefault(dir string) (*Config, error) {
	path, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrNoConfig is returned by MustLoad when an explicitly requested
// config file does not exist.
var ErrNoConfig = errors.New("config file not found")

// MustLoad loads an explicitly named config file, distinguishing a
// missing file from a malformed one.
func MustLoad(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoConfig, path)
		}
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}
	return Load(path)
}
