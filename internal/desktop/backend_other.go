//go:build !linux && !windows

package desktop

import (
	"fmt"
	"log/slog"
	"runtime"
)

func newPlatformBackend(logger *slog.Logger) (API, error) {
	return nil, fmt.Errorf("no desktop backend for %s", runtime.GOOS)
}
