package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/harshul/pndev/internal/shell"
	"github.com/harshul/pndev/internal/ui"
)

// Client runs git against repositories under Root.
type Client struct {
	Runner       shell.Runner
	Root         string
	Host         string
	Organization string
}

// RemoteURL is the ssh clone URL for a repository of the organization.
func (c *Client) RemoteURL(name string) string {
	return fmt.Sprintf("git@%s:%s/%s.git", c.Host, c.Organization, name)
}

// Path is where name is cloned.
func (c *Client) Path(name string) string {
	return filepath.Join(c.Root, name)
}

// Clone clones name with submodules into Root.
func (c *Client) Clone(ctx context.Context, name string) error {
	if err := os.MkdirAll(c.Root, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Root, err)
	}

	log.Debug("cloning repository", "name", name, "dest", c.Path(name))
	return c.run(ctx, "", "git clone failed", "clone", "--recurse-submodules", c.RemoteURL(name), c.Path(name))
}

// Update fast-forwards an existing clone.
func (c *Client) Update(ctx context.Context, name string) error {
	log.Debug("updating repository", "name", name)
	return c.run(ctx, c.Path(name), "git pull failed", "pull", "--ff")
}

// Review fetches and checks out branch pr in the clone of name. A branch
// missing on the remote is reported and skipped.
func (c *Client) Review(ctx context.Context, name, pr string) error {
	dir := c.Path(name)

	if err := c.run(ctx, dir, "git fetch failed", "fetch"); err != nil {
		return err
	}

	if err := c.run(ctx, dir, "git ls-remote failed", "ls-remote", "--exit-code", "origin", pr); err != nil {
		if errors.Is(err, shell.ErrExitStatus) {
			ui.Warn(fmt.Sprintf("remote branch not found for %s:%s", name, pr))
			return nil
		}
		return err
	}

	if err := c.run(ctx, dir, "git checkout failed", "checkout", "-b", pr, "origin/"+pr); err != nil {
		ui.Failure(fmt.Sprintf("error during checkout of %s:%s", name, pr))
		return err
	}

	ui.Success(fmt.Sprintf("successfully checked out %s:%s", name, pr))
	return nil
}

// Toplevel returns the root of the repository containing dir.
func (c *Client) Toplevel(ctx context.Context, dir string) (string, error) {
	return c.output(ctx, dir, "git rev-parse failed", "rev-parse", "--show-toplevel")
}

// OriginURL returns the fetch URL of the origin remote of the repository in dir.
func (c *Client) OriginURL(ctx context.Context, dir string) (string, error) {
	return c.output(ctx, dir, "git remote get-url failed", "remote", "get-url", "origin")
}

// Open opens the web page of the repository in dir.
func (c *Client) Open(ctx context.Context, dir string) error {
	remote, err := c.OriginURL(ctx, dir)
	if err != nil {
		return err
	}

	url, err := WebURL(remote)
	if err != nil {
		return err
	}
	log.Debug("opening repository", "url", url)

	_, err = shell.Run(ctx, c.Runner, shell.Command{
		Program:        browserOpener(),
		Args:           []string{url},
		FailureMessage: "failed to open " + url,
		Capture:        true,
	})
	return err
}

var remotePattern = regexp.MustCompile(`^(?:[^@/]+@)?(?:https?://|ssh://)?(?:[^@/]+@)?([^:/]+)[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// WebURL converts an ssh or https remote into the repository's https URL.
func WebURL(remote string) (string, error) {
	m := remotePattern.FindStringSubmatch(strings.TrimSpace(remote))
	if m == nil {
		return "", fmt.Errorf("could not determine repo url from %q", remote)
	}
	return fmt.Sprintf("https://%s/%s/%s", m[1], m[2], m[3]), nil
}

func browserOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// run executes git with captured output; a failure carries git's stderr.
func (c *Client) run(ctx context.Context, dir, msg string, args ...string) error {
	_, err := c.output(ctx, dir, msg, args...)
	return err
}

func (c *Client) output(ctx context.Context, dir, msg string, args ...string) (string, error) {
	outcome, err := shell.Run(ctx, c.Runner, shell.Command{
		Program:        "git",
		Args:           args,
		Dir:            dir,
		FailureMessage: msg,
		Capture:        true,
	})
	if err != nil {
		var execErr *shell.ExecutionError
		if stderr := strings.TrimSpace(string(outcome.Stderr)); stderr != "" && errors.As(err, &execErr) {
			execErr.Message = msg + ": " + stderr
		}
		return "", err
	}
	return strings.TrimSpace(string(outcome.Stdout)), nil
}
