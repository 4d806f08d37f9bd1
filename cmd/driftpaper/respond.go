package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftpaper/driftpaper/internal/client"
	"github.com/driftpaper/driftpaper/internal/feed"
)

var respondOpts struct {
	text string
}

var respondCmd = &cobra.Command{
	Use:   "respond <love|dislike|skip>",
	Short: "Post a reaction to the current wallpaper",
	Long: `Post a reaction for the configured link back to the feed. Requires
an API token in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ := feed.ResponseType(args[0])
		if !typ.Known() {
			return fmt.Errorf("unknown response type %q (love, dislike, skip)", args[0])
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		c := client.New(cfg.Base.URL, cfg.Feed.Token, logger)
		link, err := c.PostResponse(cmd.Context(), cfg.Feed.ID, typ, respondOpts.text)
		if err != nil {
			return err
		}
		fmt.Printf("Response recorded for link %d (set by %s)\n", link.ID, link.SetByName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(respondCmd)
	respondCmd.Flags().StringVar(&respondOpts.text, "text", "", "Free-form response text")
}
