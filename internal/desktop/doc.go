// Package desktop abstracts the host desktop's native capabilities behind a
// single API: changing the wallpaper, sending notifications, and opening
// files with the default application. One backend exists per supported
// platform/desktop-environment pair; callers obtain a shared handle through
// Shared and never touch a concrete backend directly.
package desktop
