package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/charmbracelet/log"
)

// Executor runs commands on the local host with os/exec.
type Executor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor returns an Executor bound to the process's standard streams.
func NewExecutor() *Executor {
	return &Executor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute starts the program and blocks until it exits. There is no timeout:
// interactive shells and dev servers run until the user stops them.
func (e *Executor) Execute(ctx context.Context, c Command) (Outcome, error) {
	log.Debug("executing command", "program", c.Program, "args", c.Args, "dir", c.Dir)

	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	if c.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdin = e.Stdin
		cmd.Stdout = e.Stdout
		cmd.Stderr = e.Stderr

		// The child shares our process group, so an interrupt reaches it too.
		// Keep ourselves alive to read its exit code.
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		defer signal.Stop(sigs)
	}

	if err := cmd.Start(); err != nil {
		return Outcome{}, &ExecutionError{
			Program: c.Program,
			Message: c.failureMessage(),
			Kind:    ErrLaunch,
			Err:     err,
		}
	}

	err := cmd.Wait()
	outcome := Outcome{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		log.Debug("command finished", "program", c.Program, "exit_code", 0)
		return outcome, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return outcome, &ExecutionError{
			Program: c.Program,
			Message: c.failureMessage(),
			Kind:    ErrLaunch,
			Err:     err,
		}
	}

	outcome.ExitCode = exitErr.ExitCode()
	if outcome.ExitCode < 0 {
		return outcome, &ExecutionError{
			Program: c.Program,
			Message: c.failureMessage(),
			Code:    outcome.ExitCode,
			Stderr:  outcome.Stderr,
			Kind:    ErrTerminated,
			Err:     err,
		}
	}

	log.Debug("command finished", "program", c.Program, "exit_code", outcome.ExitCode)
	return outcome, nil
}
