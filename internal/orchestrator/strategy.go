package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/harshul/pndev/internal/table"
)

// OverrideDir holds project-local scripts that take precedence over the
// command table.
const OverrideDir = ".pndev"

// Strategy turns an action name into a shell command, or declines with
// ok == false so the next strategy is tried.
type Strategy interface {
	Resolve(ctx context.Context, req Request, action string) (command string, ok bool, err error)
}

// OverrideScript resolves action to ./.pndev/<action> when that file exists.
type OverrideScript struct{}

func (OverrideScript) Resolve(_ context.Context, req Request, action string) (string, bool, error) {
	if !exists(filepath.Join(req.Dir, OverrideDir, action)) {
		return "", false, nil
	}
	return "./" + OverrideDir + "/" + action, true, nil
}

// CommandTable resolves action from pndev.toml. A missing or malformed action
// is an error. An absent table makes it decline, or fail when Required.
type CommandTable struct {
	Required bool
}

func (c CommandTable) Resolve(_ context.Context, req Request, action string) (string, bool, error) {
	cmd, err := table.Resolve(filepath.Join(req.Dir, table.FileName), action)
	if errors.Is(err, table.ErrTableNotFound) && !c.Required {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return cmd, true, nil
}

// Convention runs Command when Marker exists in the project directory.
type Convention struct {
	Marker  string
	Command string
}

func (c Convention) Resolve(_ context.Context, req Request, _ string) (string, bool, error) {
	if !exists(filepath.Join(req.Dir, c.Marker)) {
		return "", false, nil
	}
	return c.Command, true, nil
}

// DefaultStartStrategies is the lookup order for the start action.
func DefaultStartStrategies() []Strategy {
	return []Strategy{
		OverrideScript{},
		CommandTable{},
		Convention{Marker: "ember-cli-build.js", Command: "yarn && yarn exec ember server"},
		Convention{Marker: filepath.Join("bin", "rails"), Command: "bundle exec rails server"},
	}
}

// ActionStrategies is the lookup order for actions without a framework
// convention. The command table is required when no script overrides it.
func ActionStrategies() []Strategy {
	return []Strategy{OverrideScript{}, CommandTable{Required: true}}
}

// resolve returns the command of the first strategy that accepts action.
func resolve(ctx context.Context, strategies []Strategy, req Request, action string) (string, error) {
	for _, s := range strategies {
		cmd, ok, err := s.Resolve(ctx, req, action)
		if err != nil {
			return "", err
		}
		if ok {
			log.Info("resolved action", "action", action, "command", cmd, "via", fmt.Sprintf("%T", s))
			return cmd, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoRunnableTarget, action)
}

// withArgs appends pass-through arguments to a resolved command.
func withArgs(cmd string, req Request) string {
	if args := req.ArgString(); args != "" {
		return cmd + " " + args
	}
	return cmd
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
