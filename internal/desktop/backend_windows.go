//go:build windows

package desktop

import "log/slog"

func newPlatformBackend(logger *slog.Logger) (API, error) {
	return NewWindowsBackend(logger), nil
}
