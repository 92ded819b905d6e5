package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harshul/pndev/internal/logging"
	"github.com/harshul/pndev/internal/orchestrator"
	"github.com/harshul/pndev/internal/ui"
)

// Version information (can be set at build time)
var (
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pndev [command]",
	Short: "Bootstrap and drive the PN local development environment",
	Long: `pndev clones the PN repositories, keeps the shared docker stack running
and runs project commands inside each project's nix-shell.

Commands not listed below are looked up in the project's pndev.toml
(or .pndev/<name> script), so "pndev lint --fix" runs the lint action
with "--fix" appended.`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logging.Configure(verbosity)
	},
	RunE: runExternal,
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(cloneCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(psCmd)
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ghCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(configCmd)
}

// runExternal treats an unknown subcommand as a project action.
func runExternal(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	return env.External(cmd.Context(), args[0], args[1:])
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, orchestrator.ErrUserAbort) {
			ui.Warn("Aborted, nothing was changed")
		} else {
			fmt.Fprintln(os.Stderr, ui.Danger("Error:"), err)
		}
		os.Exit(1)
	}
}
