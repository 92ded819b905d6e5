package orchestrator

import "context"

// Checker verifies prerequisites before anything runs.
type Checker interface {
	Verify(ctx context.Context) error
}

// Stack is the container stack of the control repository.
type Stack interface {
	Up(ctx context.Context, recreate bool) error
	Down(ctx context.Context) error
	Ps(ctx context.Context) error
	Build(ctx context.Context) error
}

// Environment runs commands in the provisioned project shell. An empty
// command opens an interactive shell.
type Environment interface {
	Exec(ctx context.Context, command string) error
}

// Repositories is the version-control collaborator.
type Repositories interface {
	Clone(ctx context.Context, name string) error
	Update(ctx context.Context, name string) error
	Review(ctx context.Context, name, pr string) error
	Open(ctx context.Context, dir string) error
}

// Workspace guarantees the control repository is cloned.
type Workspace interface {
	EnsureControlRepo(ctx context.Context) error
}

// Confirmer asks the user a yes/no question. The default answer is no.
type Confirmer func(question string) (bool, error)

// Env holds the collaborators and configuration data pipelines run against.
type Env struct {
	Checker   Checker
	Stack     Stack
	Nix       Environment
	Git       Repositories
	Workspace Workspace
	Confirm   Confirmer

	// Strategies resolve the start action. Nil means DefaultStartStrategies.
	Strategies []Strategy

	ControlRepo     string
	Repos           []string
	Apps            []string
	PurgePaths      []string
	CredentialsPath string

	// Dir is the project directory every request starts with.
	Dir string
}

func (e *Env) startStrategies() []Strategy {
	if e.Strategies == nil {
		return DefaultStartStrategies()
	}
	return e.Strategies
}
