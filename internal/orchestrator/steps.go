package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/harshul/pndev/internal/ui"
)

// ScratchWarning is the question asked before a scratch reset.
const ScratchWarning = "DANGER: pndev reset scratch will reset all your local changes. Use with care"

// Check verifies prerequisites in strict mode.
func (p *Pipeline) Check() *Pipeline {
	p.steps = append(p.steps, Step{
		Name:  "check",
		check: true,
		Run: func(ctx context.Context, _ Request) error {
			return p.env.Checker.Verify(ctx)
		},
	})
	return p
}

// Up brings the container stack up.
func (p *Pipeline) Up() *Pipeline {
	return p.Then("up", func(ctx context.Context, _ Request) error {
		if err := p.env.Workspace.EnsureControlRepo(ctx); err != nil {
			return err
		}
		return p.env.Stack.Up(ctx, false)
	})
}

func (p *Pipeline) Down() *Pipeline {
	return p.Then("down", func(ctx context.Context, _ Request) error {
		if err := p.env.Workspace.EnsureControlRepo(ctx); err != nil {
			return err
		}
		return p.env.Stack.Down(ctx)
	})
}

func (p *Pipeline) Ps() *Pipeline {
	return p.Then("ps", func(ctx context.Context, _ Request) error {
		if err := p.env.Workspace.EnsureControlRepo(ctx); err != nil {
			return err
		}
		ui.Info("Docker ps output:")
		return p.env.Stack.Ps(ctx)
	})
}

// Nix opens the project shell, or runs the pass-through arguments in it.
func (p *Pipeline) Nix() *Pipeline {
	return p.Then("shell", func(ctx context.Context, req Request) error {
		return p.shell(ctx, req.ArgString())
	})
}

// Start runs the start action unless only docker was requested.
func (p *Pipeline) Start() *Pipeline {
	return p.Then("start", func(ctx context.Context, req Request) error {
		if req.DockerOnly {
			log.Info("Starting only docker services")
			return nil
		}
		cmd, err := resolve(ctx, p.env.startStrategies(), req, "start")
		if err != nil {
			return err
		}
		return p.shell(ctx, cmd)
	})
}

// Run runs the action named by the request target with its arguments.
func (p *Pipeline) Run() *Pipeline {
	return p.Then("run", func(ctx context.Context, req Request) error {
		if req.Target == "" {
			return fmt.Errorf("%w: please specify a command to run", ErrTargetUnspecified)
		}
		return p.action(ctx, req, req.Target)
	})
}

// Action runs a fixed action with the request arguments.
func (p *Pipeline) Action(action string) *Pipeline {
	return p.Then(action, func(ctx context.Context, req Request) error {
		return p.action(ctx, req, action)
	})
}

// Clone clones the target, or every configured repository in all mode.
func (p *Pipeline) Clone() *Pipeline {
	return p.Then("clone", func(ctx context.Context, req Request) error {
		names, err := p.targets(req, p.env.Repos, "please specify an app name or --all")
		if err != nil {
			return err
		}
		for _, name := range names {
			ui.Info("Cloning " + name)
			if err := p.env.Git.Clone(ctx, name); err != nil {
				return err
			}
		}
		return nil
	})
}

// Review checks out the pull request branch in the target, or in every
// configured app when no target is given.
func (p *Pipeline) Review() *Pipeline {
	return p.Then("review", func(ctx context.Context, req Request) error {
		if req.PullRequest == "" {
			return fmt.Errorf("%w: please specify a pull request (branch name)", ErrTargetUnspecified)
		}
		names := p.env.Apps
		if req.Target != "" && !req.All {
			names = []string{req.Target}
		}
		for _, name := range names {
			log.Info(fmt.Sprintf("Pulling %s:%s for review", name, req.PullRequest))
			if err := p.env.Git.Review(ctx, name, req.PullRequest); err != nil {
				return err
			}
		}
		return nil
	})
}

// Rebuild pulls the control repository and recreates the stack from fresh
// images.
func (p *Pipeline) Rebuild() *Pipeline {
	return p.Then("rebuild", func(ctx context.Context, _ Request) error {
		if err := p.env.Workspace.EnsureControlRepo(ctx); err != nil {
			return err
		}
		if err := p.env.Git.Update(ctx, p.env.ControlRepo); err != nil {
			return err
		}
		if err := p.env.Stack.Down(ctx); err != nil {
			return err
		}
		if err := p.env.Stack.Build(ctx); err != nil {
			return err
		}
		return p.env.Stack.Up(ctx, true)
	})
}

// Purge removes the local dependency caches of the project.
func (p *Pipeline) Purge() *Pipeline {
	return p.Then("purge", func(_ context.Context, req Request) error {
		log.Info("removing gems and node cache", "dir", req.Dir)
		for _, rel := range p.env.PurgePaths {
			path := filepath.Join(req.Dir, rel)
			if err := os.RemoveAll(path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
			log.Debug("removed", "path", path)
		}
		return nil
	})
}

// Confirm asks question and aborts the pipeline unless the user accepts.
func (p *Pipeline) Confirm(question string) *Pipeline {
	return p.Then("confirm", func(context.Context, Request) error {
		ok, err := p.env.Confirm(question)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserAbort
		}
		return nil
	})
}

// RequireCredentials fails unless the credentials file exists.
func (p *Pipeline) RequireCredentials() *Pipeline {
	return p.Then("credentials", func(context.Context, Request) error {
		if !exists(p.env.CredentialsPath) {
			return fmt.Errorf("%w: please create %s", ErrMissingCredentials, p.env.CredentialsPath)
		}
		return nil
	})
}

func (p *Pipeline) action(ctx context.Context, req Request, action string) error {
	cmd, err := resolve(ctx, ActionStrategies(), req, action)
	if err != nil {
		return err
	}
	return p.shell(ctx, withArgs(cmd, req))
}

func (p *Pipeline) shell(ctx context.Context, command string) error {
	if err := p.env.Workspace.EnsureControlRepo(ctx); err != nil {
		return err
	}
	return p.env.Nix.Exec(ctx, command)
}

func (p *Pipeline) targets(req Request, all []string, hint string) ([]string, error) {
	switch {
	case req.All:
		return all, nil
	case req.Target != "":
		return []string{req.Target}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTargetUnspecified, hint)
}
