package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/micromodal/internal/inspect"
	"github.com/muurk/micromodal/internal/logging"
	"github.com/muurk/micromodal/internal/playground"
)

// Demo command flags
var (
	demoInspect     bool
	demoInspectAddr string
	demoAdvertise   bool
	demoAnimate     bool
	demoOpen        bool
	demoNoMouse     bool
)

func init() {
	demoCmd.Flags().BoolVar(&demoInspect, "inspect", false, "Stream dialog transitions over a websocket")
	demoCmd.Flags().StringVar(&demoInspectAddr, "inspect-addr", "", "Inspector listen address (default from config)")
	demoCmd.Flags().BoolVar(&demoAdvertise, "advertise", false, "Announce the inspector over mDNS (implies --inspect)")
	demoCmd.Flags().BoolVar(&demoAnimate, "animate", false, "Play exit animations on every dialog")
	demoCmd.Flags().BoolVar(&demoOpen, "open", false, "Open the basic dialog on start")
	demoCmd.Flags().BoolVar(&demoNoMouse, "no-mouse", false, "Disable mouse input")

	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the dialog playground",
	Long: `Launch an interactive page with nested modal dialogs.

Keys:
  tab / shift+tab   move focus (trapped inside the topmost dialog)
  enter / space     activate the focused element
  esc               close the topmost dialog
  q                 quit when no dialog is open

Logs go to the file named by playground.log_file in the config, or to
micromodal.log in the temp directory, because the playground owns the
terminal.`,
	Example: `  # Launch the playground
  micromodal demo

  # Stream transitions to "micromodal inspect watch" in another terminal
  micromodal demo --inspect

  # Announce the inspector on the local network
  micromodal demo --advertise`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile := cfg.Playground.LogFile
	if logFile == "" {
		logFile = filepath.Join(os.TempDir(), "micromodal.log")
	}
	if err := logging.InitializeWithOutput(logLevel, logFile); err != nil {
		return err
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := playground.Options{
		Dialog:        cfg.DialogConfig(),
		OpenInitially: cfg.Dialog.OpenInitially || demoOpen,
		Animation:     cfg.AnimationDuration(),
		Mouse:         cfg.Playground.Mouse && !demoNoMouse,
		Logger:        logging.Named("playground"),
	}
	if demoAnimate {
		opts.Dialog.CloseOnAnimationEnd = true
	}

	var wg sync.WaitGroup
	inspectCtx, cancelInspect := context.WithCancel(ctx)
	defer func() {
		cancelInspect()
		wg.Wait()
	}()

	if demoInspect || demoAdvertise || cfg.Inspector.Advertise {
		addr := cfg.Inspector.Addr
		if demoInspectAddr != "" {
			addr = demoInspectAddr
		}
		hub := inspect.NewHub()
		srv := inspect.NewServer(addr, hub)
		if err := srv.Listen(); err != nil {
			return err
		}
		opts.Observers = append(opts.Observers, hub)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Serve(inspectCtx); err != nil {
				logging.Error("Inspector stopped", zap.Error(err))
			}
		}()

		if demoAdvertise || cfg.Inspector.Advertise {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := inspect.Advertise(inspectCtx, instanceName(), srv.Port()); err != nil {
					logging.Error("Advertising failed", zap.Error(err))
				}
			}()
		}
	}

	err = playground.Run(ctx, opts)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("playground failed: %w", err)
	}
	return nil
}

func instanceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "micromodal"
	}
	return "micromodal on " + host
}
