package main

import (
	"github.com/spf13/cobra"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell [command...]",
	Short: "Start a nix-shell in the current application",
	Long: `The shell command opens the app's nix-shell. Any arguments are run
inside the shell instead, e.g. "pndev shell rake db:migrate".

shell.nix is taken from the current directory, or from the root of the
enclosing git repository.`,
	Args: cobra.ArbitraryArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().SetInterspersed(false)
}

func runShell(cmd *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	return env.Shell(cmd.Context(), args)
}
