package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvInstallPath, "")
	t.Setenv(EnvDevHost, "")
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return home
}

func TestLoadCreatesDefaults(t *testing.T) {
	setHome(t)
	path := filepath.Join(t.TempDir(), "pndev", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
}

func TestLoadMergesFile(t *testing.T) {
	setHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "install_path: /srv/code\nrepos:\n  - one\n  - two\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.InstallPath != "/srv/code" {
		t.Errorf("InstallPath = %q", cfg.InstallPath)
	}
	if !reflect.DeepEqual(cfg.Repos, []string{"one", "two"}) {
		t.Errorf("Repos = %v", cfg.Repos)
	}
	if cfg.ControlRepo != "pndev" {
		t.Errorf("ControlRepo should keep its default, got %q", cfg.ControlRepo)
	}
	if !reflect.DeepEqual(cfg.Apps, Default().Apps) {
		t.Errorf("Apps should keep defaults, got %v", cfg.Apps)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setHome(t)
	t.Setenv(EnvInstallPath, "/tmp/elsewhere")
	t.Setenv(EnvDevHost, "dev.example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.InstallPath != "/tmp/elsewhere" {
		t.Errorf("InstallPath = %q", cfg.InstallPath)
	}
	if cfg.DevHost != "dev.example.com" {
		t.Errorf("DevHost = %q", cfg.DevHost)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	setHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("repos: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty install path", mutate: func(c *Config) { c.InstallPath = " " }, wantErr: true},
		{name: "empty organization", mutate: func(c *Config) { c.Organization = "" }, wantErr: true},
		{name: "control repo path", mutate: func(c *Config) { c.ControlRepo = "a/b" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	home := setHome(t)
	cfg := Default()

	root, err := cfg.RepoPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "DEV", "PN"); root != want {
		t.Errorf("RepoPath() = %q, want %q", root, want)
	}

	compose, err := cfg.ComposePath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "DEV", "PN", "pndev", "docker-compose.yml"); compose != want {
		t.Errorf("ComposePath() = %q, want %q", compose, want)
	}

	creds, err := cfg.CredentialsPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".pn_anonymize_creds"); creds != want {
		t.Errorf("CredentialsPath() = %q, want %q", creds, want)
	}

	cfg.InstallPath = "/opt/pn"
	if root, _ := cfg.RepoPath(); root != "/opt/pn" {
		t.Errorf("absolute RepoPath() = %q", root)
	}
}
