package main

import (
	"github.com/spf13/cobra"
)

// prepareCmd represents the prepare command
var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Run the optional setup steps of the current app (i.e. db setup)",
	Long: `The prepare command runs the app's prepare action (.pndev/prepare or the
"prepare" entry of pndev.toml) inside its nix-shell. It needs the
anonymizer credentials file configured under "credentials_file".`,
	Args: cobra.NoArgs,
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().Bool("big", false, "Pass --big to the prepare action")
	prepareCmd.Flags().Bool("quick", false, "Run the quick_prepare action instead")
}

func runPrepare(cmd *cobra.Command, args []string) error {
	big, _ := cmd.Flags().GetBool("big")
	quick, _ := cmd.Flags().GetBool("quick")

	env, err := newEnv()
	if err != nil {
		return err
	}
	return env.Prepare(cmd.Context(), big, quick)
}
