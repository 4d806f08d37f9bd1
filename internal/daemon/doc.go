// Package daemon provides the main orchestration for the driftpaper daemon.
// It polls the feed for wallpaper changes, downloads new images, applies them
// through the desktop backend, raises review notifications, and hot-reloads
// configuration changes.
package daemon
