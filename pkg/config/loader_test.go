package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".nixlint.toml")
	writeFile(t, path, `
disabled = ["bool_comparison"]
ignore = ["vendor/**"]
nix_version = "2.6"
jobs = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bool_comparison"}, cfg.Disabled)
	assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)
	assert.Equal(t, "2.6", cfg.NixVersion)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, FormatPretty, cfg.Format, "format is CLI-only and keeps its default")
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".nixlint.yaml")
	writeFile(t, path, `
disabled:
  - empty_inherit
nix_version: "2.5"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"empty_inherit"}, cfg.Disabled)
	assert.Equal(t, "2.5", cfg.NixVersion)
	assert.Equal(t, Default().Jobs, cfg.Jobs, "unset jobs falls back to the default")
}

func TestLoadFillsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".nixlint.toml")
	writeFile(t, path, `jobs = -1`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Jobs, cfg.Jobs)
	assert.Equal(t, "2.4", cfg.NixVersion)
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".nixlint.toml")
	writeFile(t, path, `disabled = "not a list`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestDiscoverWalksUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".nixlint.toml"), "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".nixlint.toml"), found)
}

func TestDiscoverPrefersTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".nixlint.yaml"), "")
	writeFile(t, filepath.Join(dir, ".nixlint.toml"), "")

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".nixlint.toml"), found)
}

func TestDiscoverStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".nixlint.toml"), "")
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	// The search from inside the repo must not escape past its root to
	// the config above it.
	found, err := Discover(repo)
	require.NoError(t, err)
	assert.Equal(t, "", found)
}

func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("no config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

		cfg, err := LoadOrDefault(dir)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("config present", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".nixlint.yml"), "nix_version: \"2.7\"")

		cfg, err := LoadOrDefault(dir)
		require.NoError(t, err)
		assert.Equal(t, "2.7", cfg.NixVersion)
	})
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	_, err := MustLoad(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrNoConfig)

	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `nix_version = "2.8"`)
	cfg, err := MustLoad(path)
	require.NoError(t, err)
	assert.Equal(t, "2.8", cfg.NixVersion)
}
