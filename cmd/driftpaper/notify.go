package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/driftpaper/driftpaper/internal/desktop"
)

var notifyOpts struct {
	body    string
	urgency string
	timeout time.Duration
	actions []string
}

var notifyCmd = &cobra.Command{
	Use:   "notify <title>",
	Short: "Send a desktop notification",
	Long: `Send a notification through the platform backend.

Actions are given as id=label pairs and rendered as buttons, in the order
passed, on backends that support them:

  driftpaper notify "Build finished" --body "All tests green" \
      --action view=View --action dismiss=Dismiss`,
	Args: cobra.ExactArgs(1),
	RunE: runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)

	notifyCmd.Flags().StringVar(&notifyOpts.body, "body", "", "Notification body")
	notifyCmd.Flags().StringVar(&notifyOpts.urgency, "urgency", "normal",
		"Urgency level (low, normal, critical)")
	notifyCmd.Flags().DurationVar(&notifyOpts.timeout, "timeout", 0,
		"Display duration (0 = platform default)")
	notifyCmd.Flags().StringArrayVar(&notifyOpts.actions, "action", nil,
		"Action button as id=label (repeatable)")
}

func runNotify(cmd *cobra.Command, args []string) error {
	urgency, err := parseUrgency(notifyOpts.urgency)
	if err != nil {
		return err
	}

	b := desktop.NewNotification(args[0]).
		Body(notifyOpts.body).
		Urgency(urgency)
	if notifyOpts.timeout > 0 {
		b.Timeout(notifyOpts.timeout)
	}
	for _, spec := range notifyOpts.actions {
		id, label, ok := strings.Cut(spec, "=")
		if !ok || id == "" || label == "" {
			return fmt.Errorf("invalid --action %q, expected id=label", spec)
		}
		b.Action(id, label)
	}

	api, err := desktop.Shared(logger)
	if err != nil {
		return err
	}
	return api.SendNotification(b.Build())
}

func parseUrgency(s string) (desktop.Urgency, error) {
	switch strings.ToLower(s) {
	case "low":
		return desktop.UrgencyLow, nil
	case "normal", "":
		return desktop.UrgencyNormal, nil
	case "critical":
		return desktop.UrgencyCritical, nil
	default:
		return 0, fmt.Errorf("invalid urgency %q (low, normal, critical)", s)
	}
}
