package main

import (
	"github.com/spf13/cobra"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start docker and the app's dev server",
	Long: `The start command brings the docker stack up, then starts the app with
the first of: .pndev/start, the "start" entry of pndev.toml, ember server
(ember-cli-build.js) or rails server (bin/rails).

Stopping the dev server with ctrl-c is not treated as a failure.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Start the docker stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		return env.Up(cmd.Context())
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the docker stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		return env.Stop(cmd.Context())
	},
}

var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "Print docker status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		return env.Ps(cmd.Context())
	},
}

func init() {
	startCmd.Flags().BoolP("only-docker", "d", false, "Do not start the rails or ember app")
}

func runStart(cmd *cobra.Command, args []string) error {
	dockerOnly, _ := cmd.Flags().GetBool("only-docker")

	env, err := newEnv()
	if err != nil {
		return err
	}
	return env.Start(cmd.Context(), dockerOnly)
}
