package main

import (
	"github.com/spf13/cobra"

	"github.com/harshul/pndev/internal/orchestrator"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild docker containers after downloading new config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		return env.Rebuild(cmd.Context())
	},
}

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset <docker|deps|scratch>",
	Short: "Reset docker images, local dependencies or everything",
	Long: `The reset command discards local state:

  docker   pull the control repo and rebuild the docker images
  deps     remove the gem and node caches of the current app
           (use when the ruby or node version changes)
  scratch  run the app's scratch action, then both of the above.
           Asks for confirmation first.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"docker", "deps", "scratch"},
	RunE:      runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	scope, err := orchestrator.ParseResetScope(args[0])
	if err != nil {
		return err
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	return env.Reset(cmd.Context(), scope)
}
