package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/micromodal/internal/inspect"
	"github.com/muurk/micromodal/internal/ui"
)

// Inspect command flags
var (
	scanTimeout   int
	watchDiscover bool
)

func init() {
	inspectScanCmd.Flags().IntVar(&scanTimeout, "timeout", 3, "Scan timeout in seconds")
	inspectWatchCmd.Flags().BoolVar(&watchDiscover, "discover", false, "Find the inspector over mDNS instead of using the configured address")
	inspectWatchCmd.Flags().IntVar(&scanTimeout, "timeout", 3, "Discovery timeout in seconds (with --discover)")

	inspectCmd.AddCommand(inspectWatchCmd)
	inspectCmd.AddCommand(inspectScanCmd)
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Watch dialog transitions from a running playground",
}

var inspectWatchCmd = &cobra.Command{
	Use:   "watch [url]",
	Short: "Print dialog transitions as they happen",
	Long: `Connect to a playground started with --inspect and print every dialog
transition until interrupted.

Without a URL the configured inspector address is used.`,
	Example: `  # Watch the local playground
  micromodal inspect watch

  # Watch a specific inspector
  micromodal inspect watch ws://192.168.1.20:7781/events

  # Find an advertised inspector first
  micromodal inspect watch --discover`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	url, err := watchURL(ctx, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Watching %s (ctrl+c to stop)\n\n", url)
	return inspect.Watch(ctx, url, func(m inspect.Message) {
		printMessage(out, m)
	})
}

func watchURL(ctx context.Context, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if watchDiscover {
		endpoints, err := inspect.Browse(ctx, time.Duration(scanTimeout)*time.Second)
		if err != nil {
			return "", err
		}
		if len(endpoints) == 0 {
			return "", fmt.Errorf("no inspector found within %ds", scanTimeout)
		}
		return endpoints[0].URL(), nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return "ws://" + cfg.Inspector.Addr + "/events", nil
}

func printMessage(w io.Writer, m inspect.Message) {
	ts := m.At.Local().Format("15:04:05.000")
	switch m.Kind {
	case inspect.KindHello:
		fmt.Fprintf(w, "%s connected to micromodal %s\n", ts, m.Version)
	case inspect.KindTransition:
		name := m.Name
		if name == "" {
			name = m.DialogID
		}
		fmt.Fprintf(w, "%s %-12s %-8s -> %-8s depth=%d\n", ts, name, m.From, m.To, m.Depth)
	default:
		fmt.Fprintf(w, "%s %s\n", ts, m.Kind)
	}
}

var inspectScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find inspectors advertised on the network",
	Example: `  # Scan for 3 seconds (default)
  micromodal inspect scan

  # Longer scan
  micromodal inspect scan --timeout 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ui.NewPrinter(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "Scanning for inspectors (timeout: %ds)...\n\n", scanTimeout)

		endpoints, err := inspect.Browse(cmd.Context(), time.Duration(scanTimeout)*time.Second)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		if len(endpoints) == 0 {
			p.PrintError("No inspectors found", nil, []string{
				"Start a playground with: micromodal demo --advertise",
				"Check that mDNS traffic is allowed on this network",
				"Try increasing --timeout",
			})
			return nil
		}

		details := make(map[string]string, len(endpoints))
		for i, ep := range endpoints {
			details[strconv.Itoa(i+1)+". "+ep.Instance] = ep.URL()
		}
		p.PrintSuccess(fmt.Sprintf("Found %d inspector(s)", len(endpoints)), details)
		return nil
	},
}
