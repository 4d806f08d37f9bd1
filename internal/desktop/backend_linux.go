//go:build linux

package desktop

import (
	"fmt"
	"log/slog"
	"os"
)

// newPlatformBackend selects the backend for the active Linux desktop
// environment. Only GNOME-family desktops are supported today; anything else
// fails selection outright.
func newPlatformBackend(logger *slog.Logger) (API, error) {
	de := detectDesktop(os.Getenv)
	switch de {
	case DesktopGNOME:
		return NewGnomeBackend(logger), nil
	default:
		return nil, fmt.Errorf("unsupported desktop environment %q (XDG_CURRENT_DESKTOP=%q)",
			de, os.Getenv("XDG_CURRENT_DESKTOP"))
	}
}
