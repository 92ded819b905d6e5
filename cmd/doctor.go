package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harshul/pndev/internal/doctor"
	"github.com/harshul/pndev/internal/shell"
	"github.com/harshul/pndev/internal/ui"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the workstation setup for pndev",
	Long: `The doctor command runs every prerequisite check and prints one line per
check: required tools, the dev host DNS entry, ssh access to the git host
and the anonymizer credentials file. Host platform and free disk space are
printed for reference.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	checker, err := newChecker(cfg, shell.NewExecutor())
	if err != nil {
		return err
	}

	results := checker.Report(cmd.Context())
	doctor.PrintReport(results)

	if !doctor.Healthy(results) {
		return fmt.Errorf("%w: see the report above", doctor.ErrPrerequisiteMissing)
	}
	ui.Success("pndev is ready")
	return nil
}
