package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/driftpaper/driftpaper/internal/client"
	"github.com/driftpaper/driftpaper/internal/daemon"
	"github.com/driftpaper/driftpaper/internal/desktop"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the wallpaper daemon",
	Long: `Run the daemon: poll the configured feed, download new wallpapers,
apply them through the desktop backend, and raise review notifications.

The daemon keeps running until interrupted. Configuration changes are
picked up automatically; feed and base URL changes require a restart.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	api, err := desktop.Shared(logger)
	if err != nil {
		return fmt.Errorf("selecting desktop backend: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	feedClient := client.New(cfg.Base.URL, cfg.Feed.Token, logger)
	poller := daemon.NewPoller(feedClient, api, cfg, logger)

	watcher := daemon.NewConfigWatcher(configFilePath(), poller.UpdateConfig, logger)
	if err := watcher.Start(ctx); err != nil {
		logger.Warn("config hot-reload unavailable", "error", err)
	}

	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
