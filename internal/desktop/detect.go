package desktop

import "strings"

// DesktopEnvironment identifies a Linux desktop environment family.
type DesktopEnvironment string

const (
	// DesktopGNOME covers GNOME and its derivatives (ubuntu:GNOME, pop, etc.).
	DesktopGNOME DesktopEnvironment = "gnome"
	// DesktopUnknown means no supported environment was detected.
	DesktopUnknown DesktopEnvironment = ""
)

// detectDesktop classifies the desktop environment from process environment
// variables. XDG_CURRENT_DESKTOP is a colon-separated list of names
// (e.g. "ubuntu:GNOME"); DESKTOP_SESSION is consulted as a fallback for
// sessions that do not export the former. getenv is injected for testing.
func detectDesktop(getenv func(string) string) DesktopEnvironment {
	current := strings.ToLower(getenv("XDG_CURRENT_DESKTOP"))
	for _, name := range strings.Split(current, ":") {
		if strings.Contains(name, "gnome") {
			return DesktopGNOME
		}
	}
	if strings.Contains(strings.ToLower(getenv("DESKTOP_SESSION")), "gnome") {
		return DesktopGNOME
	}
	return DesktopUnknown
}
