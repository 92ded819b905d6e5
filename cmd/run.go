package main

import (
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <name> [args...]",
	Short: "Run a project command from .pndev/ or pndev.toml",
	Long: `The run command runs the named action inside the app's nix-shell. The
action is .pndev/<name> when that script exists, otherwise the <name>
entry of pndev.toml. Remaining arguments are appended to the command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	return env.Run(cmd.Context(), args[0], args[1:])
}
