package desktop

import "strings"

// Capability identifies one optional feature a backend may support.
type Capability uint8

const (
	// CapWallpaper indicates the backend can change the desktop background.
	CapWallpaper Capability = 1 << iota
	// CapNotifications indicates the backend can submit notifications.
	CapNotifications
	// CapNotificationActions indicates notifications may carry action buttons.
	CapNotificationActions
	// CapFileOpen indicates the backend can open files with the default app.
	CapFileOpen
)

// CapabilitySet is the set of capabilities a backend supports on the current
// platform and OS version. It is a static property of a backend: repeated
// queries within one process return the identical set.
type CapabilitySet uint8

// Has reports whether every capability in c is present in the set.
func (s CapabilitySet) Has(c Capability) bool {
	return s&CapabilitySet(c) == CapabilitySet(c)
}

// String returns a stable, human-readable rendering of the set.
func (s CapabilitySet) String() string {
	if s == 0 {
		return "none"
	}
	names := []struct {
		cap  Capability
		name string
	}{
		{CapWallpaper, "wallpaper"},
		{CapNotifications, "notifications"},
		{CapNotificationActions, "notification-actions"},
		{CapFileOpen, "file-open"},
	}
	var out []string
	for _, n := range names {
		if s.Has(n.cap) {
			out = append(out, n.name)
		}
	}
	return strings.Join(out, ",")
}

// API is the contract every platform backend implements. All operations are
// synchronous: they return once the native subsystem has accepted the request,
// not once the user has reacted to it. Implementations are safe for concurrent
// use; they hold no cross-call mutable state.
type API interface {
	// ChangeBackground applies the image at path as the desktop background.
	// Where the platform distinguishes light and dark wallpapers, both are set
	// to the same image. The path must reference an existing, readable file;
	// no image decoding or validation is performed here.
	ChangeBackground(path string) error

	// SendNotification submits n to the native notification subsystem and
	// returns once it has been accepted. It does not wait for dismissal or
	// action invocation. Requesting actions on a backend whose capability set
	// lacks CapNotificationActions is an error, never a silent drop.
	SendNotification(n *Notification) error

	// OpenFile opens path with the user's default application for it.
	OpenFile(path string) error

	// Capabilities reports the backend's capability set. It is pure and
	// side-effect free.
	Capabilities() CapabilitySet
}
