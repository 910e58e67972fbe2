// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gmetrics/internal/cli"
	"gmetrics/internal/config"
	"gmetrics/internal/logging"
	"gmetrics/internal/pipeline"
	"gmetrics/internal/version"
	"gmetrics/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitNoRecords = 1
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// usageError marks bad flags, arguments, or configuration.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err}
}

// env is the state shared by subcommands once flags and config are resolved.
type env struct {
	opts   cli.Options
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
	closer io.Closer
}

// RunContext executes the CLI with argv (program name excluded) and returns
// the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	e := &env{stdout: stdout, stderr: stderr}
	root := newRootCommand(e)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if e.closer != nil {
		_ = e.closer.Close()
	}
	code := exitCode(err)
	if err != nil && code != ExitOK {
		fmt.Fprintln(stderr, "error:", err)
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCancelled
	case errors.Is(err, pipeline.ErrNoRecords):
		return ExitNoRecords
	case errors.As(err, &ue):
		return ExitUsage
	case writers.IsBrokenPipe(err):
		return ExitOK
	default:
		return ExitIO
	}
}

func newRootCommand(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "genome-metrics",
		Short: "Compute standardized genome-assembly metrics",
		Long: `genome-metrics reads a reference table of assemblies, resolves each extracted
NCBI Datasets archive under the work directory, and computes genome size, GC
content, CDS/pseudogene/tRNA counts, and mobile-element density. Values from
the assembly report take precedence over local counts; the curation CSV
supplies display names and factoids.`,
		Version:       version.Version,
		Args:          func(cmd *cobra.Command, args []string) error { return usage(cobra.NoArgs(cmd, args)) },
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd.Context(), e)
		},
	}
	root.SetVersionTemplate("genome-metrics version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })

	cli.BindPersistent(root.PersistentFlags(), &e.opts)
	cli.BindRun(root.Flags(), &e.opts)

	root.AddCommand(newInspectCommand(e), newMissingCommand(e))
	return root
}

// setup resolves config (defaults, YAML, .env, environment, flags) and
// installs logging.
func (e *env) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return usage(err)
	}
	cfg, err := config.Load(e.opts.ConfigFile)
	if err != nil {
		return usage(err)
	}
	e.opts.Apply(&cfg, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		return usage(err)
	}
	e.cfg = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return usage(err)
	}
	var w io.Writer = e.stderr
	if cfg.LogFile != "" {
		fw := logging.FileWriter(cfg.LogFile)
		e.closer = fw
		w = fw
	}
	logging.Init(level, cfg.LogFormat, w)
	slog.Debug("config resolved", "input", cfg.InputTable, "work_dir", cfg.WorkDir, "out_json", cfg.OutJSON)
	return nil
}
