package linker

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/logging"
)

// Runner starts a process and waits for it
type Runner interface {
	// Run returns the exit status. The error is reserved for processes
	// that could not be started at all.
	Run(ctx context.Context, name string, args []string) (int, error)
}

// ExecRunner runs processes attached to the given streams
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner attached to the terminal
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Linker runs planned commands
type Linker struct {
	runner Runner
	logger zerolog.Logger
}

// New creates a linker using runner
func New(runner Runner) *Linker {
	return &Linker{
		runner: runner,
		logger: logging.GetLogger("linker"),
	}
}

// Link runs cmd. A non-zero exit status fails with the status attached as
// the exit_code detail.
func (l *Linker) Link(ctx context.Context, cmd Command) error {
	args := cmd.Args()
	logging.LogCommand(cmd.Binary, args)
	done := logging.LogOperationStart(l.logger, "link")
	defer done()

	code, err := l.runner.Run(ctx, cmd.Binary, args)
	if err != nil {
		return errors.Wrapf(err, errors.ErrLinkerFailed, "failed to start the linker %s", cmd.Binary).
			WithDetail("binary", cmd.Binary)
	}
	if code != 0 {
		l.logger.Error().Int("exitCode", code).Str("zone", cmd.Zone).Msg("Linker failed")
		return errors.Newf(errors.ErrLinkerFailed, "build failed, the linker exited with status %d", code).
			WithDetail(errors.DetailExitCode, code)
	}

	l.logger.Info().Str("output", cmd.OutputFolder).Msg("Linker finished")
	return nil
}
