package desktop

import (
	"log/slog"
	"sync"
)

// newBackend constructs the backend for the running platform. It is a
// variable so tests can substitute a fake implementation.
var newBackend = newPlatformBackend

var (
	sharedOnce sync.Once
	sharedAPI  API
	sharedErr  error
)

// Select detects the current platform and desktop environment and constructs
// the matching backend. There is no generic fallback: an unsupported platform
// is a startup-time configuration error, reported here rather than through
// the per-call error taxonomy. Detection inspects process environment state
// once; the running platform is assumed stable for the process lifetime.
func Select(logger *slog.Logger) (API, error) {
	if logger == nil {
		logger = slog.Default()
	}
	api, err := newBackend(logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("desktop backend selected", "capabilities", api.Capabilities().String())
	return api, nil
}

// Shared returns the process-wide backend handle, constructing it on first
// use. The handle is read-only after construction and safe for concurrent
// use; repeated calls return the same instance (and the same error, if
// selection failed).
func Shared(logger *slog.Logger) (API, error) {
	sharedOnce.Do(func() {
		sharedAPI, sharedErr = Select(logger)
	})
	return sharedAPI, sharedErr
}
