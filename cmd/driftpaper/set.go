package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftpaper/driftpaper/internal/desktop"
)

var setCmd = &cobra.Command{
	Use:   "set <image>",
	Short: "Set the desktop wallpaper to an image file",
	Long: `Set the desktop wallpaper to the given image file through the
platform backend. Where the platform distinguishes light and dark
wallpapers, both are set to the same image.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := desktop.Shared(logger)
		if err != nil {
			return err
		}
		if err := api.ChangeBackground(args[0]); err != nil {
			return err
		}
		fmt.Printf("Wallpaper set to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
