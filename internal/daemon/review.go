package daemon

import (
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/driftpaper/driftpaper/internal/desktop"
	"github.com/driftpaper/driftpaper/internal/feed"
)

// Reviewer raises the notification that lets the user react to a freshly
// applied wallpaper. Action ids are tagged with a per-change ULID so a late
// button press can be matched against the change it belonged to.
type Reviewer struct {
	desktop desktop.API
	logger  *slog.Logger
}

// NewReviewer creates a reviewer on top of the given backend.
func NewReviewer(api desktop.API, logger *slog.Logger) *Reviewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reviewer{desktop: api, logger: logger}
}

// Review sends the review notification for a wallpaper change and, when
// requested, opens the image for inspection. Notification failures are
// logged, not propagated: a missed notification must not stall the poll
// loop. It returns the event id tagged into the action ids, or "" when the
// backend cannot deliver notifications at all.
func (r *Reviewer) Review(link *feed.Link, imagePath string, open bool) string {
	caps := r.desktop.Capabilities()
	if !caps.Has(desktop.CapNotifications) {
		r.logger.Debug("backend has no notification support; skipping review")
		return ""
	}

	eventID := ulid.Make().String()

	b := desktop.NewNotification("Wallpaper changed").
		Body(fmt.Sprintf("Your background was set to an image provided by %s.", link.SetByName())).
		Urgency(desktop.UrgencyNormal)
	if caps.Has(desktop.CapNotificationActions) {
		b.Action("love-"+eventID, "Love").
			Action("dislike-"+eventID, "Dislike")
	}

	if err := r.desktop.SendNotification(b.Build()); err != nil {
		r.logger.Warn("review notification failed", "error", err)
	}

	if open && caps.Has(desktop.CapFileOpen) {
		if err := r.desktop.OpenFile(imagePath); err != nil {
			r.logger.Warn("opening wallpaper for review failed", "error", err)
		}
	}
	return eventID
}
