// Package appshell wires a RunContext-style entry point to the process:
// signals, argv, standard streams, and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitCancelled is returned when SIGINT/SIGTERM stopped the run.
const ExitCancelled = 130

// Main runs run with a context cancelled on SIGINT/SIGTERM and exits with
// its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(main(run, os.Args[1:], os.Stdout, os.Stderr))
}

func main(run func(context.Context, []string, io.Writer, io.Writer) int, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil {
		code = ExitCancelled
	}
	return code
}
