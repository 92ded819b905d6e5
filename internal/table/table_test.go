package table

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}
	return path
}

func TestResolve(t *testing.T) {
	path := writeTable(t, `
start = "bundle exec rails s -p 3000"
prepare = "bin/setup"
broken = ["a", "b"]

[scratch]
command = "rm -rf tmp"
`)

	tests := []struct {
		name    string
		action  string
		want    string
		wantErr error
	}{
		{name: "string action", action: "start", want: "bundle exec rails s -p 3000"},
		{name: "another action", action: "prepare", want: "bin/setup"},
		{name: "missing action", action: "deploy", wantErr: ErrActionNotFound},
		{name: "nested table", action: "scratch", wantErr: ErrActionMalformed},
		{name: "array value", action: "broken", wantErr: ErrActionMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(path, tt.action)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.action, err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("Resolve(%q) returned %q alongside an error", tt.action, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.action, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.action, got, tt.want)
			}
		})
	}
}

func TestResolveAbsentTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	for _, action := range []string{"start", "prepare", "anything"} {
		_, err := Resolve(path, action)
		if !errors.Is(err, ErrTableNotFound) {
			t.Errorf("Resolve(%q) error = %v, want ErrTableNotFound", action, err)
		}
		if errors.Is(err, ErrActionNotFound) {
			t.Errorf("Resolve(%q) reported ErrActionNotFound for an absent table", action)
		}
	}
}

func TestResolveReadsFreshEachTime(t *testing.T) {
	path := writeTable(t, `start = "one"`)

	if got, _ := Resolve(path, "start"); got != "one" {
		t.Fatalf("first Resolve = %q, want one", got)
	}
	if err := os.WriteFile(path, []byte(`start = "two"`), 0644); err != nil {
		t.Fatal(err)
	}
	if got, _ := Resolve(path, "start"); got != "two" {
		t.Errorf("second Resolve = %q, want two", got)
	}
}

func TestResolveParseError(t *testing.T) {
	path := writeTable(t, `start = "unterminated`)

	_, err := Resolve(path, "start")
	if err == nil {
		t.Fatal("expected parse error")
	}
	for _, sentinel := range []error{ErrTableNotFound, ErrActionNotFound, ErrActionMalformed} {
		if errors.Is(err, sentinel) {
			t.Errorf("parse error should not match %v", sentinel)
		}
	}
}

func TestEntries(t *testing.T) {
	path := writeTable(t, `
start = "yarn start"
prepare = "bin/setup"
nested = { a = 1 }
`)

	entries, err := Entries(path)
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Name != "prepare" || entries[1].Name != "start" {
		t.Errorf("entries not sorted: %+v", entries)
	}
	if entries[1].Shell != "yarn start" {
		t.Errorf("start shell = %q", entries[1].Shell)
	}
}
