package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/harshul/pndev/internal/compose"
	"github.com/harshul/pndev/internal/config"
	"github.com/harshul/pndev/internal/doctor"
	"github.com/harshul/pndev/internal/git"
	"github.com/harshul/pndev/internal/orchestrator"
	"github.com/harshul/pndev/internal/provisioner"
	"github.com/harshul/pndev/internal/shell"
	"github.com/harshul/pndev/internal/ui"
	"github.com/harshul/pndev/internal/workspace"
)

// loadConfig loads the user config, creating it on first use.
func loadConfig() (config.Config, string, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, path, nil
}

func newGitClient(cfg config.Config, runner shell.Runner) (*git.Client, error) {
	root, err := cfg.RepoPath()
	if err != nil {
		return nil, err
	}
	return &git.Client{
		Runner:       runner,
		Root:         root,
		Host:         cfg.GitHost,
		Organization: cfg.Organization,
	}, nil
}

func newChecker(cfg config.Config, runner shell.Runner) (*doctor.Checker, error) {
	creds, err := cfg.CredentialsPath()
	if err != nil {
		return nil, err
	}
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return &doctor.Checker{
		Runner:          runner,
		Tools:           cfg.RequiredTools,
		Host:            cfg.DevHost,
		SSHTarget:       "git@" + cfg.GitHost,
		CredentialsPath: creds,
		DiskPath:        home,
		System:          doctor.HostSystem,
		Disk:            doctor.HostDisk,
	}, nil
}

// newEnv wires the collaborators every pipeline runs against.
func newEnv() (*orchestrator.Env, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	runner := shell.NewExecutor()

	gitClient, err := newGitClient(cfg, runner)
	if err != nil {
		return nil, err
	}
	checker, err := newChecker(cfg, runner)
	if err != nil {
		return nil, err
	}
	composePath, err := cfg.ComposePath()
	if err != nil {
		return nil, err
	}

	return &orchestrator.Env{
		Checker: checker,
		Stack:   &compose.Compose{Runner: runner, File: composePath},
		Nix:     &provisioner.Shell{Runner: runner, Git: gitClient, Dir: cwd},
		Git:     gitClient,
		Workspace: &workspace.Workspace{
			Root:        gitClient.Root,
			ControlRepo: cfg.ControlRepo,
			Git:         gitClient,
		},
		Confirm: func(question string) (bool, error) {
			return ui.Confirm(ui.Danger(question))
		},
		ControlRepo:     cfg.ControlRepo,
		Repos:           cfg.Repos,
		Apps:            cfg.Apps,
		PurgePaths:      cfg.PurgePaths,
		CredentialsPath: checker.CredentialsPath,
		Dir:             cwd,
	}, nil
}
