package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftpaper/driftpaper/internal/desktop"
)

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Show the selected backend's capabilities",
	Long: `Select the desktop backend for this platform and print its
capability set. Useful for checking what the daemon will be able to do
on this machine before running it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := desktop.Shared(logger)
		if err != nil {
			return err
		}

		caps := api.Capabilities()
		rows := []struct {
			cap  desktop.Capability
			name string
		}{
			{desktop.CapWallpaper, "wallpaper"},
			{desktop.CapNotifications, "notifications"},
			{desktop.CapNotificationActions, "notification-actions"},
			{desktop.CapFileOpen, "file-open"},
		}
		for _, row := range rows {
			mark := "no"
			if caps.Has(row.cap) {
				mark = "yes"
			}
			fmt.Printf("%-22s %s\n", row.name, mark)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(capsCmd)
}
