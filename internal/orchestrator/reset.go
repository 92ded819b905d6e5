package orchestrator

import "fmt"

// ResetScope selects how much local state a reset discards.
type ResetScope int

const (
	// ResetDocker rebuilds the environment images.
	ResetDocker ResetScope = iota
	// ResetDeps purges the local dependency caches.
	ResetDeps
	// ResetScratch discards all local state and needs confirmation.
	ResetScratch
)

func (s ResetScope) String() string {
	switch s {
	case ResetDocker:
		return "docker"
	case ResetDeps:
		return "deps"
	case ResetScratch:
		return "scratch"
	}
	return fmt.Sprintf("ResetScope(%d)", int(s))
}

// ParseResetScope parses the CLI token of a reset.
func ParseResetScope(token string) (ResetScope, error) {
	switch token {
	case "docker":
		return ResetDocker, nil
	case "deps":
		return ResetDeps, nil
	case "scratch":
		return ResetScratch, nil
	}
	return 0, fmt.Errorf("unknown reset scope %q (expected docker, deps or scratch)", token)
}
