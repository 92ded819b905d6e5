// Package table resolves action names against a project's pndev.toml, a flat
// mapping from action name to a single shell command string.
package table

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// FileName is the command table looked up in the project directory.
const FileName = "pndev.toml"

var (
	ErrTableNotFound   = errors.New("command table not found")
	ErrActionNotFound  = errors.New("action not found")
	ErrActionMalformed = errors.New("action is not a command string")
)

// ResolveError identifies the table and action a lookup failed for.
type ResolveError struct {
	Path   string
	Action string
	Err    error
}

func (e *ResolveError) Error() string {
	switch e.Err {
	case ErrTableNotFound:
		return fmt.Sprintf("%s not found", e.Path)
	case ErrActionNotFound:
		return fmt.Sprintf("command %s not found in %s", e.Action, e.Path)
	case ErrActionMalformed:
		return fmt.Sprintf("invalid %s command in %s: expected a string", e.Action, e.Path)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Entry is one string action of the table.
type Entry struct {
	Name  string
	Shell string
}

// Load reads the table fresh from disk. Nothing is cached between calls.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ResolveError{Path: path, Err: ErrTableNotFound}
		}
		return nil, fmt.Errorf("command table load failed (%s): %w", path, err)
	}

	values := map[string]any{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("command table parse failed (%s): %w", path, err)
	}
	return values, nil
}

// Resolve returns the shell command stored under action, unmodified. Callers
// append their own arguments.
func Resolve(path, action string) (string, error) {
	values, err := Load(path)
	if err != nil {
		return "", err
	}

	raw, ok := values[action]
	if !ok {
		return "", &ResolveError{Path: path, Action: action, Err: ErrActionNotFound}
	}
	cmd, ok := raw.(string)
	if !ok {
		return "", &ResolveError{Path: path, Action: action, Err: ErrActionMalformed}
	}
	return cmd, nil
}

// Entries lists the string actions in the table sorted by name. Keys with
// other value types are skipped; Resolve reports them as malformed.
func Entries(path string) ([]Entry, error) {
	values, err := Load(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(values))
	for name, raw := range values {
		if cmd, ok := raw.(string); ok {
			entries = append(entries, Entry{Name: name, Shell: cmd})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
