// Package compose drives the docker-compose stack defined in the control repository.
package compose

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/harshul/pndev/internal/shell"
)

// DefaultProgram is the compose binary invoked when Program is empty.
const DefaultProgram = "docker-compose"

// Compose runs docker-compose verbs against one compose file.
type Compose struct {
	Runner  shell.Runner
	File    string
	Program string
}

// Up starts the stack detached. recreate forces containers to be recreated.
func (c *Compose) Up(ctx context.Context, recreate bool) error {
	args := []string{"up", "-d"}
	if recreate {
		args = append(args, "--force-recreate")
	}
	return c.run(ctx, "Docker up failed", args...)
}

// Down stops and removes the stack.
func (c *Compose) Down(ctx context.Context) error {
	return c.run(ctx, "Docker down failed", "down")
}

// Ps lists the stack's containers.
func (c *Compose) Ps(ctx context.Context) error {
	return c.run(ctx, "Docker ps failed", "ps")
}

// Build rebuilds all images without the layer cache.
func (c *Compose) Build(ctx context.Context) error {
	return c.run(ctx, "Docker rebuild failed", "build", "--no-cache")
}

func (c *Compose) program() string {
	if c.Program == "" {
		return DefaultProgram
	}
	return c.Program
}

func (c *Compose) run(ctx context.Context, msg string, verb ...string) error {
	args := append([]string{"-f", c.File}, verb...)
	log.Debug("running compose", "file", c.File, "verb", verb)

	_, err := shell.Run(ctx, c.Runner, shell.Command{
		Program:        c.program(),
		Args:           args,
		FailureMessage: msg,
	})
	return err
}
