package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath  = "PNDEV_CONFIG"
	EnvInstallPath = "PNDEV_INSTALL_PATH"
	EnvDevHost     = "PNDEV_DEV_HOST"
)

// Config is the per-user pndev configuration.
type Config struct {
	// InstallPath is where repositories are cloned. Relative paths are
	// resolved against the home directory.
	InstallPath     string   `yaml:"install_path"`
	Organization    string   `yaml:"organization"`
	GitHost         string   `yaml:"git_host"`
	DevHost         string   `yaml:"dev_host"`
	ControlRepo     string   `yaml:"control_repo"`
	ComposeFile     string   `yaml:"compose_file"`
	CredentialsFile string   `yaml:"credentials_file"`
	RequiredTools   []string `yaml:"required_tools"`
	Repos           []string `yaml:"repos"`
	Apps            []string `yaml:"apps"`
	PurgePaths      []string `yaml:"purge_paths"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InstallPath:     "DEV/PN",
		Organization:    "PrecisionNutrition",
		GitHost:         "github.com",
		DevHost:         "es-dev.precisionnutrition.com",
		ControlRepo:     "pndev",
		ComposeFile:     "docker-compose.yml",
		CredentialsFile: "~/.pn_anonymize_creds",
		RequiredTools:   []string{"git", "nix", "docker", "docker-compose"},
		Repos: []string{
			"eternal-sledgehammer",
			"es-student",
			"es-admin",
			"fitpro",
			"es-certification",
			"payment-next",
			"courier",
			"owners-manual",
			"profile-engine",
			"academy",
		},
		Apps: []string{
			"eternal-sledgehammer",
			"es-student",
			"fitpro",
			"es-certification",
			"es-admin",
			"payment-next",
			"academy",
		},
		PurgePaths: []string{".nix-gems", "vendor/cache", "node_modules", ".nix-node"},
	}
}

// DefaultPath returns the config file location, honoring PNDEV_CONFIG.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return homedir.Expand(p)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pndev", "config.yaml"), nil
}

// Load reads the config at path. A missing file is created with defaults.
// Fields left empty in the file fall back to the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("generating config file", "path", path)
		if err := Write(path, cfg); err != nil {
			return Config{}, err
		}
	case err != nil:
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	default:
		var fromFile Config
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		cfg = merge(cfg, fromFile)
	}

	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s invalid: %w", path, err)
	}
	return cfg, nil
}

// Write writes cfg as YAML, creating parent directories.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func merge(base, over Config) Config {
	if over.InstallPath != "" {
		base.InstallPath = over.InstallPath
	}
	if over.Organization != "" {
		base.Organization = over.Organization
	}
	if over.GitHost != "" {
		base.GitHost = over.GitHost
	}
	if over.DevHost != "" {
		base.DevHost = over.DevHost
	}
	if over.ControlRepo != "" {
		base.ControlRepo = over.ControlRepo
	}
	if over.ComposeFile != "" {
		base.ComposeFile = over.ComposeFile
	}
	if over.CredentialsFile != "" {
		base.CredentialsFile = over.CredentialsFile
	}
	if over.RequiredTools != nil {
		base.RequiredTools = over.RequiredTools
	}
	if over.Repos != nil {
		base.Repos = over.Repos
	}
	if over.Apps != nil {
		base.Apps = over.Apps
	}
	if over.PurgePaths != nil {
		base.PurgePaths = over.PurgePaths
	}
	return base
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvInstallPath)); v != "" {
		cfg.InstallPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDevHost)); v != "" {
		cfg.DevHost = v
	}
}

// Validate checks the fields every command depends on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.InstallPath) == "" {
		return fmt.Errorf("install_path is required")
	}
	if strings.TrimSpace(c.Organization) == "" {
		return fmt.Errorf("organization is required")
	}
	if strings.TrimSpace(c.GitHost) == "" {
		return fmt.Errorf("git_host is required")
	}
	if strings.TrimSpace(c.ControlRepo) == "" {
		return fmt.Errorf("control_repo is required")
	}
	if strings.ContainsAny(c.ControlRepo, `/\`) {
		return fmt.Errorf("control_repo must be a repository name, got %q", c.ControlRepo)
	}
	return nil
}

// RepoPath is the absolute directory repositories are cloned into.
func (c Config) RepoPath() (string, error) {
	p, err := homedir.Expand(c.InstallPath)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, p), nil
}

// ComposePath is the compose file inside the control repository.
func (c Config) ComposePath() (string, error) {
	root, err := c.RepoPath()
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(c.ComposeFile) {
		return c.ComposeFile, nil
	}
	return filepath.Join(root, c.ControlRepo, c.ComposeFile), nil
}

// CredentialsPath expands the credentials file location.
func (c Config) CredentialsPath() (string, error) {
	return homedir.Expand(c.CredentialsFile)
}
