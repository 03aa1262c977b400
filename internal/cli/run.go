package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/nixlint/internal/logging"
	"github.com/yaklabco/nixlint/pkg/config"
	"github.com/yaklabco/nixlint/pkg/reporter"
	"github.com/yaklabco/nixlint/pkg/runner"

	// Register built-in rules with the default registry.
	_ "github.com/yaklabco/nixlint/pkg/lint/rules"
)

// runFlags are the options shared by the check and fix commands.
type runFlags struct {
	format     string
	ignore     []string
	disable    []string
	nixVersion string
	jobs       int
	strict     bool
	noContext  bool
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVarP(&flags.format, "format", "o", "", "output format: pretty, errfmt, json")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns for paths to skip")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule names to turn off")
	cmd.Flags().StringVar(&flags.nixVersion, "nix-version", "", "Nix language version for version-gated rules")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files linted concurrently")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero on any finding")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "omit source context from pretty output")
}

// resolveConfig loads the project config and layers the CLI flags on
// top of it.
func resolveConfig(cmd *cobra.Command, flags *runFlags, workDir string) (*config.Config, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	var cfg *config.Config
	if explicit != "" {
		cfg, err = config.MustLoad(explicit)
	} else {
		cfg, err = config.LoadOrDefault(workDir)
	}
	if err != nil {
		return nil, err
	}

	if flags.format != "" {
		format, err := config.ParseFormat(flags.format)
		if err != nil {
			return nil, err
		}
		cfg.Format = format
	}
	if cfg.Format == "" {
		cfg.Format = config.FormatPretty
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)
	cfg.Disabled = append(cfg.Disabled, flags.disable...)
	if flags.nixVersion != "" {
		cfg.NixVersion = flags.nixVersion
	}
	if flags.jobs > 0 {
		cfg.Jobs = flags.jobs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runLint executes one check or fix run and reports the results. The
// returned error carries the exit code through exitError.
func runLint(cmd *cobra.Command, args []string, flags *runFlags, fixMode, dryRun bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()

	workDir, err := os.Getwd()
	if err != nil {
		return &exitError{code: ExitInternalError, err: fmt.Errorf("get working directory: %w", err)}
	}

	cfg, err := resolveConfig(cmd, flags, workDir)
	if err != nil {
		return &exitError{code: ExitConfigError, err: err}
	}
	logger.Debug("configuration resolved",
		logging.FieldNixVersion, cfg.NixVersion,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFormat, cfg.Format,
		logging.FieldFix, fixMode,
		logging.FieldDryRun, dryRun)

	lintRunner := runner.NewFromConfig(cfg.IsDisabled)
	result, err := lintRunner.Run(ctx, runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Fix:        fixMode && !dryRun,
		DryRun:     dryRun,
		Config:     cfg,
	})
	if err != nil {
		return &exitError{code: ExitIOError, err: err}
	}

	color, _ := cmd.Flags().GetString("color")
	rep, err := reporter.New(cfg.Format, reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Color:       color,
		ShowContext: !flags.noContext,
		WorkingDir:  workDir,
	})
	if err != nil {
		return &exitError{code: ExitUsage, err: err}
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return &exitError{code: ExitIOError, err: fmt.Errorf("write report: %w", err)}
	}

	if code := exitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return &exitError{code: code}
	}
	return nil
}

// exitError carries an exit code out of a command. A nil wrapped error
// means the output already said everything.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// ExitCode resolves err to a process exit code, logging unexpected
// failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ee, ok := err.(*exitError); ok {
		if ee.err != nil {
			logging.Default().Error(ee.err.Error())
		}
		return ee.code
	}
	logging.Default().Error(err.Error())
	return ExitInternalError
}
