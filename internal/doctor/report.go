package doctor

import (
	"github.com/harshul/pndev/internal/ui"
)

// PrintReport prints one ✓/✗ line per result.
func PrintReport(results []Result) {
	for _, r := range results {
		if r.Info {
			ui.Info(r.Message)
			continue
		}
		ui.Check(r.OK, r.Message)
	}
}
