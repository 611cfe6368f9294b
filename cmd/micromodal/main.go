// Micromodal is a terminal playground and inspector for the micromodal
// dialog engine.
//
// Usage:
//
//	micromodal [command] [flags]
//
// Running without arguments launches the playground.
// See 'micromodal --help' for available commands.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/muurk/micromodal/internal/config"
	"github.com/muurk/micromodal/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "micromodal",
	Short: "Modal dialog playground and inspector",
	Long: `A terminal playground for nested modal dialogs with focus trapping.

The playground opens dialogs over a small page, traps tab focus inside the
topmost one, closes it on escape or a click outside, and restores focus to
whatever was focused before it opened. Dialog transitions can be streamed
to other terminals with the inspector.

If no command is specified, the playground launches.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the OS config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default $MICROMODAL_LOG_LEVEL)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Printf("micromodal %s (commit: %s, %s %s/%s)\n",
			info.Version, info.Commit, info.GoVersion, runtime.GOOS, runtime.GOARCH)
	},
}

// resolveConfigPath returns --config or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.Path()
}

// loadConfig loads the file named by --config, or the default file.
func loadConfig() (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
