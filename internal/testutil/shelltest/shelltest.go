// Package shelltest provides a recording shell.Runner for tests.
package shelltest

import (
	"context"
	"strings"

	"github.com/harshul/pndev/internal/shell"
)

// Recorder records every command it is asked to execute. Handler, when set,
// decides the outcome; otherwise every command exits 0.
type Recorder struct {
	Calls   []shell.Command
	Handler func(shell.Command) (shell.Outcome, error)
}

func (r *Recorder) Execute(_ context.Context, cmd shell.Command) (shell.Outcome, error) {
	r.Calls = append(r.Calls, cmd)
	if r.Handler != nil {
		return r.Handler(cmd)
	}
	return shell.Outcome{}, nil
}

// Lines renders each recorded call as "program arg1 arg2".
func (r *Recorder) Lines() []string {
	lines := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		lines = append(lines, strings.Join(append([]string{c.Program}, c.Args...), " "))
	}
	return lines
}

// Exit returns an outcome with the given code.
func Exit(code int) shell.Outcome {
	return shell.Outcome{ExitCode: code}
}

// NotFound returns the error Execute reports for a program that cannot start.
func NotFound(cmd shell.Command) error {
	return &shell.ExecutionError{
		Program: cmd.Program,
		Message: "not found",
		Kind:    shell.ErrLaunch,
	}
}

// Missing builds a handler where the listed programs fail to launch and
// everything else exits 0.
func Missing(programs ...string) func(shell.Command) (shell.Outcome, error) {
	return func(cmd shell.Command) (shell.Outcome, error) {
		for _, p := range programs {
			if cmd.Program == p {
				return shell.Outcome{}, NotFound(cmd)
			}
		}
		return shell.Outcome{}, nil
	}
}
