package main

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/driftpaper/driftpaper/internal/desktop"
	"github.com/driftpaper/driftpaper/internal/feed"
)

var openOpts struct {
	web bool
}

var openCmd = &cobra.Command{
	Use:   "open [file]",
	Short: "Open a file with its default application",
	Long: `Open a file through the platform backend's default-application
mechanism.

With --web, open the configured feed's link page in the browser instead;
no file argument is needed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if openOpts.web {
			if cfg.Feed.ID <= 0 {
				return fmt.Errorf("feed.id not configured")
			}
			return browser.OpenURL(feed.LinkPageURL(cfg.Base.URL, cfg.Feed.ID))
		}

		if len(args) != 1 {
			return fmt.Errorf("a file argument is required without --web")
		}
		api, err := desktop.Shared(logger)
		if err != nil {
			return err
		}
		return api.OpenFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolVar(&openOpts.web, "web", false,
		"Open the feed's link page in the browser")
}
