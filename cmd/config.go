package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harshul/pndev/internal/config"
	"github.com/harshul/pndev/internal/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the pndev configuration",
	Long: `The config command prints the effective configuration and the file it
was read from (~/.config/pndev/config.yaml, or $PNDEV_CONFIG).

Use --install-path to change where repositories are cloned, or -i to be
asked for it.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().String("install-path", "", "Set the directory repositories are cloned into")
	configCmd.Flags().BoolP("interactive", "i", false, "Ask for the install path")
}

func runConfig(cmd *cobra.Command, args []string) error {
	installPath, _ := cmd.Flags().GetString("install-path")
	interactive, _ := cmd.Flags().GetBool("interactive")

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	if interactive {
		value, ok, err := ui.Ask("Where should repositories be cloned?", cfg.InstallPath)
		if err != nil {
			return err
		}
		if !ok {
			ui.Warn("Config unchanged")
			return nil
		}
		installPath = value
	}

	if installPath != "" {
		cfg.InstallPath = installPath
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Write(path, cfg); err != nil {
			return err
		}
		ui.Success("Updated " + path)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	ui.Label("Config", path)
	fmt.Fprint(ui.Output, string(data))
	return nil
}
