package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestIsSuccess(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{0, true},
		{130, true},
		{255, true},
		{260, true},
		{510, true},
		{1, false},
		{2, false},
		{127, false},
		{129, false},
		{254, false},
	}

	for _, tt := range tests {
		if got := IsSuccess(tt.code); got != tt.want {
			t.Errorf("IsSuccess(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestIsSuccessMatchesModulusRule(t *testing.T) {
	for c := 0; c < 1024; c++ {
		want := c%255 == 0 || c%130 == 0
		if got := IsSuccess(c); got != want {
			t.Fatalf("IsSuccess(%d) = %v, want %v", c, got, want)
		}
	}
}

func newTestExecutor() (*Executor, *bytes.Buffer) {
	var out bytes.Buffer
	return &Executor{Stdin: strings.NewReader(""), Stdout: &out, Stderr: &out}, &out
}

func TestExecutorExitCodes(t *testing.T) {
	e, _ := newTestExecutor()
	ctx := context.Background()

	tests := []struct {
		name      string
		script    string
		wantCode  int
		wantError bool
	}{
		{name: "success", script: "exit 0", wantCode: 0},
		{name: "interrupt is success", script: "exit 130", wantCode: 130},
		{name: "wrapped no-op is success", script: "exit 255", wantCode: 255},
		{name: "plain failure", script: "exit 1", wantCode: 1, wantError: true},
		{name: "usage failure", script: "exit 2", wantCode: 2, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Run(ctx, e, Command{
				Program:        "sh",
				Args:           []string{"-c", tt.script},
				FailureMessage: "Docker up failed",
			})
			if outcome.ExitCode != tt.wantCode {
				t.Errorf("exit code = %d, want %d", outcome.ExitCode, tt.wantCode)
			}
			if (err != nil) != tt.wantError {
				t.Fatalf("Run() error = %v, wantError %v", err, tt.wantError)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrExitStatus) {
				t.Errorf("expected ErrExitStatus, got %v", err)
			}
			want := "Docker up failed (exit code: " + tt.script[len("exit "):] + ")"
			if err.Error() != want {
				t.Errorf("error = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestExecutorStreamsOutput(t *testing.T) {
	e, out := newTestExecutor()

	if _, err := Run(context.Background(), e, Command{Program: "sh", Args: []string{"-c", "echo hello"}}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "hello" {
		t.Errorf("streamed output = %q, want %q", got, "hello")
	}
}

func TestExecutorCapture(t *testing.T) {
	e, out := newTestExecutor()

	outcome, err := e.Execute(context.Background(), Command{
		Program: "sh",
		Args:    []string{"-c", "echo visible; echo broken >&2; exit 3"},
		Capture: true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if outcome.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", outcome.ExitCode)
	}
	if strings.TrimSpace(string(outcome.Stdout)) != "visible" {
		t.Errorf("stdout = %q", outcome.Stdout)
	}
	if strings.TrimSpace(string(outcome.Stderr)) != "broken" {
		t.Errorf("stderr = %q", outcome.Stderr)
	}
	if out.Len() != 0 {
		t.Errorf("captured command leaked %q to the terminal", out.String())
	}
}

func TestExecutorLaunchFailure(t *testing.T) {
	e, _ := newTestExecutor()

	_, err := e.Execute(context.Background(), Command{Program: "pndev-definitely-not-installed"})
	if err == nil {
		t.Fatal("expected launch error")
	}
	if !errors.Is(err, ErrLaunch) {
		t.Errorf("expected ErrLaunch, got %v", err)
	}
	if Launched(err) {
		t.Error("Launched() = true for a missing program")
	}
}

func TestExecutorKilledProcess(t *testing.T) {
	e, _ := newTestExecutor()

	_, err := e.Execute(context.Background(), Command{Program: "sh", Args: []string{"-c", "kill -9 $$"}})
	if !errors.Is(err, ErrTerminated) {
		t.Fatalf("expected ErrTerminated, got %v", err)
	}
	if !Launched(err) {
		t.Error("Launched() = false for a process that started")
	}
}

func TestDefaultFailureMessage(t *testing.T) {
	e, _ := newTestExecutor()

	_, err := Run(context.Background(), e, Command{Program: "sh", Args: []string{"-c", "exit 4"}})
	if err == nil || err.Error() != "Shell command failed (exit code: 4)" {
		t.Errorf("unexpected error %v", err)
	}
}
