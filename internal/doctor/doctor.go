package doctor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/charmbracelet/log"

	"github.com/harshul/pndev/internal/shell"
)

// ErrPrerequisiteMissing is returned by Verify when a tool or host is missing.
var ErrPrerequisiteMissing = errors.New("prerequisite missing")

// Checker verifies the workstation has what pipelines need.
type Checker struct {
	Runner shell.Runner

	// Tools must launch with --version. Their exit code does not matter.
	Tools []string

	// Host must resolve via DNS.
	Host string

	// SSHTarget and CredentialsPath are only checked by Report.
	SSHTarget       string
	CredentialsPath string

	// DiskPath is measured for free space in Report.
	DiskPath string

	LookupHost func(ctx context.Context, host string) ([]string, error)
	System     func() (SystemInfo, error)
	Disk       func(path string) (DiskInfo, error)
}

// Result is one line of a diagnostic report.
type Result struct {
	Name string
	OK   bool
	// Info marks lines that are printed but never count as failures.
	Info    bool
	Message string
}

// Verify runs the strict checks and stops at the first missing prerequisite.
func (c *Checker) Verify(ctx context.Context) error {
	log.Debug("checking prerequisites", "tools", c.Tools, "host", c.Host)

	for _, tool := range c.Tools {
		if !c.toolInstalled(ctx, tool) {
			return fmt.Errorf("%w: %s not installed, run pndev doctor for help", ErrPrerequisiteMissing, tool)
		}
	}

	if c.Host != "" && !c.hostResolves(ctx) {
		return fmt.Errorf("%w: %s not configured, run pndev doctor for help", ErrPrerequisiteMissing, c.Host)
	}

	return nil
}

// Report runs every check, including the optional ones, without stopping.
func (c *Checker) Report(ctx context.Context) []Result {
	var results []Result

	for _, tool := range c.Tools {
		if c.toolInstalled(ctx, tool) {
			results = append(results, Result{Name: tool, OK: true, Message: tool + " installed"})
		} else {
			results = append(results, Result{Name: tool, Message: tool + " not installed"})
		}
	}

	if c.Host != "" {
		if c.hostResolves(ctx) {
			results = append(results, Result{Name: "host", OK: true, Message: c.Host + " resolves"})
		} else {
			results = append(results, Result{Name: "host", Message: c.Host + " does not resolve"})
		}
	}

	if c.SSHTarget != "" {
		if c.sshAllowed(ctx) {
			results = append(results, Result{Name: "ssh", OK: true, Message: "ssh access to " + c.SSHTarget + " allowed"})
		} else {
			results = append(results, Result{Name: "ssh", Message: "ssh access to " + c.SSHTarget + " not allowed"})
		}
	}

	if c.CredentialsPath != "" {
		if _, err := os.Stat(c.CredentialsPath); err == nil {
			results = append(results, Result{Name: "credentials", OK: true, Message: c.CredentialsPath + " present"})
		} else {
			results = append(results, Result{Name: "credentials", Message: c.CredentialsPath + " missing"})
		}
	}

	return append(results, c.systemResults()...)
}

// Healthy reports whether every non-informational result passed.
func Healthy(results []Result) bool {
	for _, r := range results {
		if !r.OK && !r.Info {
			return false
		}
	}
	return true
}

func (c *Checker) toolInstalled(ctx context.Context, tool string) bool {
	_, err := c.Runner.Execute(ctx, shell.Command{
		Program: tool,
		Args:    []string{"--version"},
		Capture: true,
	})
	installed := shell.Launched(err)
	log.Debug("tool probe", "tool", tool, "installed", installed)
	return installed
}

func (c *Checker) hostResolves(ctx context.Context) bool {
	lookup := c.LookupHost
	if lookup == nil {
		lookup = net.DefaultResolver.LookupHost
	}
	addrs, err := lookup(ctx, c.Host)
	return err == nil && len(addrs) > 0
}

// sshAllowed probes "ssh -T". A successful auth exits 1 because no shell is
// granted; anything else means access is not set up.
func (c *Checker) sshAllowed(ctx context.Context) bool {
	outcome, err := c.Runner.Execute(ctx, shell.Command{
		Program: "ssh",
		Args:    []string{"-T", c.SSHTarget},
		Capture: true,
	})
	if err != nil {
		return false
	}
	return outcome.ExitCode%255 == 1
}
