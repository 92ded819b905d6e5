package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harshul/pndev/internal/table"
	"github.com/harshul/pndev/internal/ui"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the actions of the current project's pndev.toml",
	Args:  cobra.NoArgs,
	RunE:  runActions,
}

func runActions(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	entries, err := table.Entries(filepath.Join(cwd, table.FileName))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ui.Warn("no actions defined in " + table.FileName)
		return nil
	}
	for _, e := range entries {
		ui.Label(e.Name, e.Shell)
	}
	return nil
}
