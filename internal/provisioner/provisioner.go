// Package provisioner runs commands inside the reproducible nix-shell
// environment of a project.
package provisioner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/harshul/pndev/internal/shell"
	"github.com/harshul/pndev/internal/ui"
)

const (
	DefaultProgram    = "nix-shell"
	DefaultConfigName = "shell.nix"
)

// RootFinder locates the version-control root enclosing a directory.
type RootFinder interface {
	Toplevel(ctx context.Context, dir string) (string, error)
}

// Shell invokes nix-shell with the shell.nix of the current project.
type Shell struct {
	Runner shell.Runner
	Git    RootFinder

	// Dir is the directory searched first for the config. Empty means the
	// process working directory.
	Dir string

	Program    string
	ConfigName string
}

func (s *Shell) program() string {
	if s.Program == "" {
		return DefaultProgram
	}
	return s.Program
}

func (s *Shell) configName() string {
	if s.ConfigName == "" {
		return DefaultConfigName
	}
	return s.ConfigName
}

// ConfigPath returns the shell.nix to use: the one in Dir when present,
// otherwise the one at the root of the enclosing repository. The latter
// supports monorepos whose apps share one shell.nix.
func (s *Shell) ConfigPath(ctx context.Context) (string, error) {
	local := filepath.Join(s.Dir, s.configName())
	if _, err := os.Stat(local); err == nil {
		log.Debug("using shell config from current dir", "path", local)
		return local, nil
	}

	top, err := s.Git.Toplevel(ctx, s.Dir)
	if err != nil {
		return "", fmt.Errorf("no %s found: %w", s.configName(), err)
	}

	path := filepath.Join(top, s.configName())
	ui.Label("Using", path)
	return path, nil
}

// Enter opens an interactive nix-shell.
func (s *Shell) Enter(ctx context.Context) error {
	path, err := s.ConfigPath(ctx)
	if err != nil {
		return err
	}

	_, err = shell.Run(ctx, s.Runner, shell.Command{
		Program: s.program(),
		Args:    []string{path},
		Dir:     s.Dir,
	})
	return err
}

// Run executes command inside nix-shell and returns when it exits.
func (s *Shell) Run(ctx context.Context, command string) error {
	path, err := s.ConfigPath(ctx)
	if err != nil {
		return err
	}

	log.Debug("running in nix-shell", "command", command, "config", path)
	_, err = shell.Run(ctx, s.Runner, shell.Command{
		Program:        s.program(),
		Args:           []string{"--run", command, path},
		Dir:            s.Dir,
		FailureMessage: "nix-shell --run failed",
	})
	return err
}

// Exec runs command inside nix-shell, or opens an interactive shell when
// command is empty.
func (s *Shell) Exec(ctx context.Context, command string) error {
	if command == "" {
		return s.Enter(ctx)
	}
	return s.Run(ctx, command)
}
