// Package shell runs build subprocesses and streams their output.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.fanout.dev/fanout/internal/core/domain"
	"go.fanout.dev/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

// infoMarker tags stderr lines that are progress notices, not errors.
const infoMarker = "[INFO]"

// maxLineSize bounds a single output line. Compiler output can carry
// long minified snippets in diagnostics.
const maxLineSize = 1024 * 1024

// Runner implements ports.TaskRunner using os/exec.
//
// Both output channels of the subprocess are drained concurrently so the
// process can never stall on a full pipe buffer while the other channel
// is being read.
type Runner struct {
	sink   ports.Sink
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(sink ports.Sink, logger ports.Logger) *Runner {
	return &Runner{
		sink:   sink,
		logger: logger,
	}
}

// Run executes one task descriptor and returns its outcome. A non-zero
// exit is recorded in the outcome, not returned as an error; only a
// failure to spawn the subprocess sets the outcome's Err.
func (r *Runner) Run(ctx context.Context, task domain.TaskDescriptor) domain.TaskOutcome {
	prefix := task.Identity.Prefix()

	emit := func(line string, isErr bool) {
		if isErr && !strings.HasPrefix(line, infoMarker) {
			r.sink.ErrLine(prefix, line)
			return
		}
		r.sink.Line(prefix, line)
	}

	exitCode, err := Stream(ctx, task.Args, task.Env, emit)
	if err != nil {
		return domain.TaskOutcome{
			Identity: task.Identity,
			ExitCode: -1,
			Err:      errors.Join(domain.ErrTaskStartFailed, err),
		}
	}

	return domain.TaskOutcome{
		Identity: task.Identity,
		ExitCode: exitCode,
	}
}

// Stream starts argv as a subprocess with the given environment, drains
// stdout and stderr line by line through emit, and waits for the process
// to exit. The returned error is non-nil only when the process could not
// be started; an exiting process always yields its exit code.
func Stream(
	ctx context.Context,
	argv []string,
	env []string,
	emit func(line string, isErr bool),
) (int, error) {
	if len(argv) == 0 {
		return -1, zerr.New("empty argument vector")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // configured command
	cmd.Env = env

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return -1, zerr.Wrap(err, "failed to start command")
	}

	// One drain goroutine per channel. Wait must not be called until both
	// pipes have been read to EOF.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		drain(stdout, false, emit)
	}()
	go func() {
		defer wg.Done()
		drain(stderr, true, emit)
	}()
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.Wrap(err, "command did not run")
	}

	return 0, nil
}

func drain(r io.Reader, isErr bool, emit func(line string, isErr bool)) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		emit(sc.Text(), isErr)
	}
}
