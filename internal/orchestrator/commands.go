package orchestrator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

func (e *Env) pipeline() *Pipeline {
	return New(e).Dir(e.Dir)
}

// Shell opens the project shell, running args in it when given.
func (e *Env) Shell(ctx context.Context, args []string) error {
	return e.pipeline().Args(args).Check().Up().Nix().Execute(ctx)
}

// Start brings the stack up and starts the project's dev server.
func (e *Env) Start(ctx context.Context, dockerOnly bool) error {
	return e.pipeline().DockerOnly(dockerOnly).Check().Up().Start().Execute(ctx)
}

func (e *Env) Up(ctx context.Context) error {
	return e.pipeline().Check().Up().Execute(ctx)
}

func (e *Env) Stop(ctx context.Context) error {
	return e.pipeline().Check().Down().Execute(ctx)
}

func (e *Env) Ps(ctx context.Context) error {
	return e.pipeline().Check().Ps().Execute(ctx)
}

func (e *Env) Rebuild(ctx context.Context) error {
	return e.pipeline().Check().Rebuild().Execute(ctx)
}

// Reset discards local state according to scope. A scratch reset asks for
// confirmation before anything else runs.
func (e *Env) Reset(ctx context.Context, scope ResetScope) error {
	p := e.pipeline()
	switch scope {
	case ResetScratch:
		p.Confirm(ScratchWarning).Check().Action("scratch").Rebuild().Purge()
	case ResetDocker:
		p.Check().Rebuild()
	case ResetDeps:
		p.Check().Purge()
	default:
		return fmt.Errorf("unknown reset scope %s", scope)
	}
	return p.Execute(ctx)
}

// Prepare runs the prepare action, or quick_prepare when quick is set. big
// forwards --big to it.
func (e *Env) Prepare(ctx context.Context, big, quick bool) error {
	var args []string
	if big {
		args = append(args, "--big")
	}
	action := "prepare"
	if quick {
		action = "quick_prepare"
	}
	return e.pipeline().Args(args).Check().Up().RequireCredentials().Action(action).Execute(ctx)
}

// Clone clones name, or every configured repository when all is set.
func (e *Env) Clone(ctx context.Context, name string, all bool) error {
	if err := e.pipeline().Target(name).All(all).Check().Up().Clone().Execute(ctx); err != nil {
		return err
	}
	log.Info("Clone completed")
	return nil
}

// Review checks out branch pr in name, or in every configured app when name
// is empty.
func (e *Env) Review(ctx context.Context, name, pr string) error {
	if err := e.pipeline().Target(name).PullRequest(pr).Check().Up().Review().Execute(ctx); err != nil {
		return err
	}
	log.Info("Review completed")
	return nil
}

// Run runs the action name with args.
func (e *Env) Run(ctx context.Context, name string, args []string) error {
	return e.pipeline().Target(name).Args(args).Check().Up().Run().Execute(ctx)
}

// External handles an unknown subcommand as an action of the project.
func (e *Env) External(ctx context.Context, action string, args []string) error {
	log.Debug("external subcommand", "action", action, "args", args)
	return e.Run(ctx, action, args)
}

// Gh opens the current repository on the web.
func (e *Env) Gh(ctx context.Context) error {
	return e.pipeline().Then("open", func(ctx context.Context, req Request) error {
		return e.Git.Open(ctx, req.Dir)
	}).Execute(ctx)
}
