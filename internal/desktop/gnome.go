package desktop

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"path/filepath"

	"github.com/godbus/dbus/v5"
)

// D-Bus coordinates of the freedesktop notification service.
const (
	notifyService    = "org.freedesktop.Notifications"
	notifyObjectPath = "/org/freedesktop/Notifications"
	notifyMethod     = "org.freedesktop.Notifications.Notify"
)

// gsettings schema for the GNOME desktop background.
const backgroundSchema = "org.gnome.desktop.background"

// GnomeBackend implements API for GNOME-family desktops. Wallpaper changes go
// through gsettings, notifications through org.freedesktop.Notifications on
// the session bus, and file opening through xdg-open. The backend holds no
// cross-call state; the session bus connection is established per call.
type GnomeBackend struct {
	appName string
	logger  *slog.Logger
}

// NewGnomeBackend constructs a GNOME backend. Safe to call multiple times,
// though the process normally holds a single instance via Shared.
func NewGnomeBackend(logger *slog.Logger) *GnomeBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &GnomeBackend{appName: "driftpaper", logger: logger}
}

// Capabilities reports the full set: GNOME supports wallpaper, notifications
// with actions, and file opening.
func (g *GnomeBackend) Capabilities() CapabilitySet {
	return CapabilitySet(CapWallpaper | CapNotifications | CapNotificationActions | CapFileOpen)
}

// ChangeBackground sets both the light and dark wallpaper keys to the same
// image so the change applies regardless of the active color scheme.
func (g *GnomeBackend) ChangeBackground(path string) error {
	const op = "change_background"
	if err := checkPath(op, path); err != nil {
		return err
	}

	uri, err := fileURI(path)
	if err != nil {
		return newError(ErrAPIFailure, op, err)
	}

	for _, key := range []string{"picture-uri", "picture-uri-dark"} {
		out, err := exec.Command("gsettings", "set", backgroundSchema, key, uri).CombinedOutput()
		if err != nil {
			return errorf(ErrAPIFailure, op, "gsettings set %s: %v: %s", key, err, out)
		}
	}
	g.logger.Debug("wallpaper changed", "uri", uri)
	return nil
}

// SendNotification submits the notification over the session bus and returns
// once the notification service has accepted it. Action invocation signals
// are delivered by the service itself and are not handled here.
func (g *GnomeBackend) SendNotification(n *Notification) error {
	const op = "send_notification"

	actions := n.Actions()
	if len(actions) > 0 && !g.Capabilities().Has(CapNotificationActions) {
		return errorf(ErrNotification, op, "backend does not support notification actions")
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return newError(ErrAPIFailure, op, err)
	}
	defer conn.Close()

	// Actions travel as alternating id/label pairs, insertion order preserved.
	pairs := make([]string, 0, len(actions)*2)
	for _, a := range actions {
		pairs = append(pairs, a.ID, a.Title)
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(n.Urgency())),
	}

	// -1 asks the server to apply its default expiry.
	expire := int32(-1)
	if d, ok := n.Timeout(); ok {
		expire = int32(d.Milliseconds())
	}

	obj := conn.Object(notifyService, notifyObjectPath)
	call := obj.Call(notifyMethod, 0,
		g.appName, // app_name
		uint32(0), // replaces_id
		"",        // app_icon
		n.Title(), // summary
		n.Body(),  // body
		pairs,     // actions
		hints,     // hints
		expire,    // expire_timeout
	)
	if call.Err != nil {
		return newError(ErrNotification, op, call.Err)
	}
	return nil
}

// OpenFile opens path with the default application via xdg-open.
func (g *GnomeBackend) OpenFile(path string) error {
	const op = "open_file"
	if err := checkPath(op, path); err != nil {
		return err
	}

	out, err := exec.Command("xdg-open", path).CombinedOutput()
	if err != nil {
		return errorf(ErrAPIFailure, op, "xdg-open: %v: %s", err, out)
	}
	g.logger.Debug("file opened", "path", path)
	return nil
}

// fileURI converts a filesystem path to a file:// URI, escaping characters
// that gsettings would otherwise misparse.
func fileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	u := url.URL{Scheme: "file", Path: abs}
	return u.String(), nil
}
