// Package workspace makes sure the shared control repository is cloned
// before anything touches the provisioned environment.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Cloner clones a repository of the organization into the workspace root.
type Cloner interface {
	Clone(ctx context.Context, name string) error
}

// Workspace is the local directory holding every cloned repository.
type Workspace struct {
	Root        string
	ControlRepo string
	Git         Cloner
}

// ControlRepoPath is where the control repository lives.
func (w *Workspace) ControlRepoPath() string {
	return filepath.Join(w.Root, w.ControlRepo)
}

// EnsureControlRepo clones the control repository when it is absent. It stats
// the filesystem on every call.
func (w *Workspace) EnsureControlRepo(ctx context.Context) error {
	path := w.ControlRepoPath()

	_, err := os.Stat(path)
	switch {
	case err == nil:
		log.Info(fmt.Sprintf("%s already cloned, to update run git pull in %s", w.ControlRepo, path))
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	log.Info("cloning control repository", "name", w.ControlRepo, "dest", path)
	if err := w.Git.Clone(ctx, w.ControlRepo); err != nil {
		return fmt.Errorf("failed to clone %s: %w", w.ControlRepo, err)
	}
	return nil
}
