package main

import (
	"github.com/spf13/cobra"
)

// cloneCmd represents the clone command
var cloneCmd = &cobra.Command{
	Use:   "clone [name]",
	Short: "Clone one or all the PN apps into the install path",
	Long: `The clone command clones a repository of the organization, with its
submodules, into the install path (~/DEV/PN by default).

With --all it clones every repository listed under "repos" in the config,
one after the other, and stops at the first failure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClone,
}

func init() {
	cloneCmd.Flags().BoolP("all", "a", false, "Clone all the main PN apps")
}

func runClone(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	return env.Clone(cmd.Context(), name, all)
}
