package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nixlint/pkg/runner"
)

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	clean := &runner.Result{Stats: runner.Stats{ReportsBySeverity: map[string]int{}}}
	assert.Equal(t, ExitSuccess, exitCodeFromResult(clean, false))
	assert.Equal(t, ExitSuccess, exitCodeFromResult(nil, true))

	warnings := &runner.Result{Stats: runner.Stats{
		ReportsTotal:      2,
		ReportsBySeverity: map[string]int{"warn": 2},
	}}
	assert.Equal(t, ExitSuccess, exitCodeFromResult(warnings, false))
	assert.Equal(t, ExitFindings, exitCodeFromResult(warnings, true))

	withErrors := &runner.Result{Stats: runner.Stats{
		ReportsTotal:      1,
		ReportsBySeverity: map[string]int{"error": 1},
	}}
	assert.Equal(t, ExitFindings, exitCodeFromResult(withErrors, false))

	failed := &runner.Result{Stats: runner.Stats{
		FilesErrored:      1,
		ReportsBySeverity: map[string]int{},
	}}
	assert.Equal(t, ExitFindings, exitCodeFromResult(failed, false))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFindings, ExitCode(&exitError{code: ExitFindings}))
	assert.Equal(t, ExitConfigError, ExitCode(&exitError{code: ExitConfigError, err: errors.New("bad config")}))
	assert.Equal(t, ExitInternalError, ExitCode(errors.New("unexpected")))
}

func TestExitErrorUnwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	ee := &exitError{code: ExitIOError, err: inner}
	assert.ErrorIs(t, ee, inner)
	assert.Equal(t, "inner", ee.Error())
	assert.Equal(t, "", (&exitError{code: ExitFindings}).Error())
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(BuildInfo{Version: "test"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.nix"), []byte("{ x = x; }"), 0o644))
	t.Chdir(dir)

	out, err := runCommand(t, "check", "--format", "errfmt")
	require.NoError(t, err, "warnings alone exit zero")
	assert.Contains(t, out, "bad.nix>1:3:W:3:")
}

func TestCheckCommandStrict(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.nix"), []byte("{ x = x; }"), 0o644))
	t.Chdir(dir)

	_, err := runCommand(t, "check", "--strict", "--format", "errfmt")
	require.Error(t, err)
	assert.Equal(t, ExitFindings, ExitCode(err))
}

func TestCheckCommandCleanTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.nix"), []byte("{ a = 1; }"), 0o644))
	t.Chdir(dir)

	out, err := runCommand(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found")
}

func TestCheckCommandDisableRule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.nix"), []byte("{ x = x; }"), 0o644))
	t.Chdir(dir)

	out, err := runCommand(t, "check", "--disable", "manual_inherit", "--format", "errfmt")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestCheckCommandBadFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "check", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, ExitCode(err))
}

func TestCheckCommandMissingExplicitConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "check", "--config", "nope.toml")
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, ExitCode(err))
}

func TestFixCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.nix")
	require.NoError(t, os.WriteFile(path, []byte("{ x = x; }"), 0o644))
	t.Chdir(dir)

	_, err := runCommand(t, "fix")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{ inherit x; }", string(data))
}

func TestFixCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.nix")
	require.NoError(t, os.WriteFile(path, []byte("{ x = x; }"), 0o644))
	t.Chdir(dir)

	out, err := runCommand(t, "fix", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "+{ inherit x; }")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{ x = x; }", string(data))
}

func TestExplainCommand(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "explain", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "manual_inherit_from (code 4)")
	assert.Contains(t, out, "inherit-from")

	out, err = runCommand(t, "explain", "faster_groupby")
	require.NoError(t, err)
	assert.Contains(t, out, "Applies to Nix 2.5")

	_, err = runCommand(t, "explain", "no_such_rule")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestResolveConfigOverlaysFlags(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nixlint.toml"),
		[]byte("disabled = [\"empty_let_in\"]\nnix_version = \"2.4\"\n"), 0o644))

	cmd := newCheckCommand()
	cmd.Flags().String("config", "", "")
	flags := &runFlags{nixVersion: "2.6", disable: []string{"bool_comparison"}}

	cfg, err := resolveConfig(cmd, flags, dir)
	require.NoError(t, err)
	assert.Equal(t, "2.6", cfg.NixVersion, "flag overrides file")
	assert.ElementsMatch(t, []string{"empty_let_in", "bool_comparison"}, cfg.Disabled)
}

// Session version gating surfaces through the CLI nix-version flag.
func TestCheckCommandNixVersionGate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "g.nix"),
		[]byte("{ a = lib.groupBy f xs; }"), 0o644))
	t.Chdir(dir)

	out, err := runCommand(t, "check", "--nix-version", "2.4", "--format", "errfmt")
	require.NoError(t, err)
	assert.Equal(t, "", out, "groupBy advice needs Nix 2.5")

	out, err = runCommand(t, "check", "--nix-version", "2.5", "--format", "errfmt")
	require.NoError(t, err)
	assert.Contains(t, out, ":15:")
}
