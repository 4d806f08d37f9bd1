package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftpaper/driftpaper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the driftpaper configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a config file with default values to the standard location
(or the path given with --config). Fill in feed.id and feed.token
afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		defaults := config.DefaultConfig()
		if err := defaults.Save(path); err != nil {
			return err
		}
		fmt.Printf("Config written to %s\n", path)
		return nil
	},
}

var configImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a downloaded config file",
	Long: `Search the Downloads and Documents folders (and the home directory)
for a ` + config.ImportFilename + ` exported from the feed's web UI and
install it as the active configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		found, err := config.Import()
		if err != nil {
			return err
		}
		fmt.Printf("Imported %s to %s\n", found, config.ConfigPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configImportCmd)
}
