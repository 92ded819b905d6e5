package main

import (
	"github.com/spf13/cobra"
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review [name] --pr <branch>",
	Short: "Check out a pull request branch for review",
	Long: `The review command fetches and checks out a pull request branch in a
cloned app. Without a name it tries every app listed under "apps" in the
config; apps where the branch does not exist on the remote are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringP("pr", "p", "", "Pull request branch name")
}

func runReview(cmd *cobra.Command, args []string) error {
	pr, _ := cmd.Flags().GetString("pr")

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	return env.Review(cmd.Context(), name, pr)
}
