package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/micromodal/internal/config"
	"github.com/muurk/micromodal/internal/ui"
)

var configForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the micromodal config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Example: `  # Create the default config file
  micromodal config init

  # Write defaults somewhere else
  micromodal config init --config ./micromodal.yaml --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		if err := config.InitFile(path, configForce); err != nil {
			p.PrintError("Config not written", err, []string{
				"Use --force to overwrite the existing file",
				"Use --config to write somewhere else",
			})
			return err
		}
		p.PrintSuccess("Config written", map[string]string{
			"Path":    path,
			"Version": fmt.Sprint(config.CurrentVersion),
		})
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
