package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// journal records every collaborator call in order.
type journal struct {
	calls []string
}

func (j *journal) add(format string, args ...any) {
	j.calls = append(j.calls, fmt.Sprintf(format, args...))
}

type fakeChecker struct {
	j   *journal
	err error
}

func (f *fakeChecker) Verify(context.Context) error {
	f.j.add("check")
	return f.err
}

type fakeStack struct {
	j      *journal
	failOn string
}

func (f *fakeStack) do(verb string) error {
	f.j.add("docker %s", verb)
	if verb == f.failOn {
		return fmt.Errorf("docker %s failed", verb)
	}
	return nil
}

func (f *fakeStack) Up(_ context.Context, recreate bool) error {
	if recreate {
		return f.do("up --force-recreate")
	}
	return f.do("up")
}
func (f *fakeStack) Down(context.Context) error { return f.do("down") }
func (f *fakeStack) Ps(context.Context) error { return f.do("ps") }
func (f *fakeStack) Build(context.Context) error { return f.do("build") }

type fakeNix struct {
	j *journal
}

func (f *fakeNix) Exec(_ context.Context, command string) error {
	f.j.add("nix %s", command)
	return nil
}

type fakeGit struct {
	j      *journal
	failOn string
}

func (f *fakeGit) Clone(_ context.Context, name string) error {
	f.j.add("clone %s", name)
	if name == f.failOn {
		return fmt.Errorf("clone of %s failed", name)
	}
	return nil
}

func (f *fakeGit) Update(_ context.Context, name string) error {
	f.j.add("update %s", name)
	return nil
}

func (f *fakeGit) Review(_ context.Context, name, pr string) error {
	f.j.add("review %s:%s", name, pr)
	if name == f.failOn {
		return fmt.Errorf("review of %s failed", name)
	}
	return nil
}

func (f *fakeGit) Open(_ context.Context, dir string) error {
	f.j.add("open %s", dir)
	return nil
}

type fakeWorkspace struct {
	calls int
}

func (f *fakeWorkspace) EnsureControlRepo(context.Context) error {
	f.calls++
	return nil
}

type fixture struct {
	j       *journal
	env     *Env
	checker *fakeChecker
	stack   *fakeStack
	git     *fakeGit
	ws      *fakeWorkspace
	asked   []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	j := &journal{}
	f := &fixture{
		j:       j,
		checker: &fakeChecker{j: j},
		stack:   &fakeStack{j: j},
		git:     &fakeGit{j: j},
		ws:      &fakeWorkspace{},
	}
	f.env = &Env{
		Checker:     f.checker,
		Stack:       f.stack,
		Nix:         &fakeNix{j: j},
		Git:         f.git,
		Workspace:   f.ws,
		ControlRepo: "pndev",
		Repos:       []string{"r1", "r2", "r3", "r4", "r5"},
		Apps:        []string{"es-student", "fitpro"},
		PurgePaths:  []string{"node_modules", filepath.Join("vendor", "cache")},
		Dir:         t.TempDir(),
	}
	f.answer(false)
	return f
}

// answer makes the confirmation prompt reply with ok.
func (f *fixture) answer(ok bool) {
	f.env.Confirm = func(question string) (bool, error) {
		f.asked = append(f.asked, question)
		f.j.add("confirm")
		return ok, nil
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
