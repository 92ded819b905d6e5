// Package orchestrator sequences prerequisite checks and side-effecting steps
// for every pndev command. A pipeline is an ordered list of steps over one
// request; the first failing step stops it.
package orchestrator

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	ErrUserAbort          = errors.New("user abort")
	ErrTargetUnspecified  = errors.New("no target specified")
	ErrNoRunnableTarget   = errors.New("no runnable target found")
	ErrMissingCredentials = errors.New("missing credentials")
)

// Request is the input threaded through a pipeline run.
type Request struct {
	Target      string
	All         bool
	PullRequest string
	Args        []string
	DockerOnly  bool

	// Dir is the project directory probed for override scripts, the command
	// table and framework files.
	Dir string
}

// ArgString joins the pass-through arguments with spaces.
func (r Request) ArgString() string {
	return strings.Join(r.Args, " ")
}

// State is the lifecycle position of a pipeline.
type State int

const (
	StateUninitialized State = iota
	StateConfigured
	StateChecked
	StateRunning
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConfigured:
		return "configured"
	case StateChecked:
		return "checked"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Step is one fallible unit of a pipeline.
type Step struct {
	Name  string
	Run   func(ctx context.Context, req Request) error
	check bool
}

// Pipeline collects configuration and steps, then runs the steps in order.
type Pipeline struct {
	env   *Env
	req   Request
	steps []Step
	state State
}

// New returns an empty pipeline bound to env.
func New(env *Env) *Pipeline {
	return &Pipeline{env: env}
}

// State reports where the pipeline is in its lifecycle.
func (p *Pipeline) State() State {
	return p.state
}

// Request returns a copy of the configured request.
func (p *Pipeline) Request() Request {
	return p.req
}

func (p *Pipeline) configure(fn func(*Request)) *Pipeline {
	if p.state > StateConfigured {
		log.Warn("pipeline already started, ignoring configuration change")
		return p
	}
	fn(&p.req)
	p.state = StateConfigured
	return p
}

func (p *Pipeline) Target(name string) *Pipeline {
	return p.configure(func(r *Request) { r.Target = name })
}

func (p *Pipeline) All(all bool) *Pipeline {
	return p.configure(func(r *Request) { r.All = all })
}

func (p *Pipeline) PullRequest(pr string) *Pipeline {
	return p.configure(func(r *Request) { r.PullRequest = pr })
}

func (p *Pipeline) Args(args []string) *Pipeline {
	return p.configure(func(r *Request) { r.Args = append([]string(nil), args...) })
}

func (p *Pipeline) DockerOnly(dockerOnly bool) *Pipeline {
	return p.configure(func(r *Request) { r.DockerOnly = dockerOnly })
}

func (p *Pipeline) Dir(dir string) *Pipeline {
	return p.configure(func(r *Request) { r.Dir = dir })
}

// Then appends a step.
func (p *Pipeline) Then(name string, run func(context.Context, Request) error) *Pipeline {
	p.steps = append(p.steps, Step{Name: name, Run: run})
	return p
}

// Steps lists the names of the appended steps in order.
func (p *Pipeline) Steps() []string {
	names := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		names = append(names, s.Name)
	}
	return names
}

// Execute runs every step in order and stops at the first error, which is
// returned as is. Side effects of steps that already ran are kept.
func (p *Pipeline) Execute(ctx context.Context) error {
	req := p.req

	for _, step := range p.steps {
		if !step.check {
			p.state = StateRunning
		}
		log.Debug("pipeline step", "step", step.Name)
		if err := step.Run(ctx, req); err != nil {
			log.Debug("pipeline step failed", "step", step.Name, "err", err)
			p.state = StateFailed
			return err
		}
		if step.check {
			p.state = StateChecked
		}
	}

	p.state = StateCompleted
	return nil
}
