//go:build windows

package desktop

import (
	"fmt"
	"log/slog"
	"time"
	"unsafe"

	"github.com/go-toast/toast"
	"golang.org/x/sys/windows"
)

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
	swShowNormal        = 1
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	shell32              = windows.NewLazySystemDLL("shell32.dll")
	procSystemParameters = user32.NewProc("SystemParametersInfoW")
	procShellExecute     = shell32.NewProc("ShellExecuteW")
)

// WindowsBackend implements API on Windows. Wallpaper changes use the
// system-wide SystemParametersInfoW call (persisted and broadcast so the
// change is visible immediately), notifications use toast-style messages
// tagged with the application identity, and file opening uses the shell
// "open" verb. Toast notifications require Windows 8 or newer; older builds
// report CapNotifications absent instead of failing at call time. Action
// buttons are not supported on this backend at all: toast activation needs a
// registered COM activator, so CapNotificationActions is always absent.
type WindowsBackend struct {
	appID     string
	hasToasts bool
	logger    *slog.Logger
}

// NewWindowsBackend constructs a Windows backend, probing the OS version once
// to decide whether the toast path is available.
func NewWindowsBackend(logger *slog.Logger) *WindowsBackend {
	if logger == nil {
		logger = slog.Default()
	}
	major, minor, _ := windows.RtlGetNtVersionNumbers()
	hasToasts := major > 6 || (major == 6 && minor >= 2)
	return &WindowsBackend{appID: "Driftpaper", hasToasts: hasToasts, logger: logger}
}

// Capabilities reports wallpaper and file-open support unconditionally;
// notifications only when the OS version has the toast subsystem.
func (w *WindowsBackend) Capabilities() CapabilitySet {
	caps := CapabilitySet(CapWallpaper | CapFileOpen)
	if w.hasToasts {
		caps |= CapabilitySet(CapNotifications)
	}
	return caps
}

// ChangeBackground applies the image via SPI_SETDESKWALLPAPER, writing the
// user profile and broadcasting the change for an immediate refresh.
func (w *WindowsBackend) ChangeBackground(path string) error {
	const op = "change_background"
	if err := checkPath(op, path); err != nil {
		return err
	}

	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return newError(ErrAPIFailure, op, err)
	}
	ret, _, callErr := procSystemParameters.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(p)),
		spifUpdateIniFile|spifSendChange,
	)
	if ret == 0 {
		return errorf(ErrAPIFailure, op, "SystemParametersInfoW: %v", callErr)
	}
	w.logger.Debug("wallpaper changed", "path", path)
	return nil
}

// SendNotification submits a toast notification and returns once it has been
// handed to the notification subsystem.
func (w *WindowsBackend) SendNotification(n *Notification) error {
	const op = "send_notification"

	if !w.hasToasts {
		return errorf(ErrNotification, op, "toast notifications unavailable on this Windows version")
	}
	if len(n.Actions()) > 0 {
		return errorf(ErrNotification, op, "backend does not support notification actions")
	}

	note := toast.Notification{
		AppID:    w.appID,
		Title:    n.Title(),
		Message:  n.Body(),
		Duration: toastDuration(n),
	}
	if err := note.Push(); err != nil {
		return newError(ErrNotification, op, err)
	}
	return nil
}

// OpenFile opens path through the shell "open" verb. ShellExecuteW reports
// failure as an HINSTANCE value of 32 or below; the well-known codes are
// mapped onto the shared taxonomy.
func (w *WindowsBackend) OpenFile(path string) error {
	const op = "open_file"
	if err := checkPath(op, path); err != nil {
		return err
	}

	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return newError(ErrAPIFailure, op, err)
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return newError(ErrAPIFailure, op, err)
	}

	ret, _, _ := procShellExecute.Call(
		0,
		uintptr(unsafe.Pointer(verb)),
		uintptr(unsafe.Pointer(file)),
		0,
		0,
		swShowNormal,
	)
	if ret > 32 {
		w.logger.Debug("file opened", "path", path)
		return nil
	}

	err = fmt.Errorf("ShellExecuteW: %s (code %d)", shellExecuteError(ret), ret)
	switch ret {
	case 2, 3: // ERROR_FILE_NOT_FOUND, ERROR_PATH_NOT_FOUND
		return newError(ErrFileNotFound, op, err)
	case 5: // ERROR_ACCESS_DENIED
		return newError(ErrPermissionDenied, op, err)
	default:
		return newError(ErrAPIFailure, op, err)
	}
}

// toastDuration maps the portable timeout/urgency onto the two durations the
// toast subsystem offers.
func toastDuration(n *Notification) toast.Duration {
	if d, ok := n.Timeout(); ok {
		if d > 25*time.Second {
			return toast.Long
		}
		return toast.Short
	}
	if n.Urgency() == UrgencyCritical {
		return toast.Long
	}
	return toast.Short
}

func shellExecuteError(code uintptr) string {
	switch code {
	case 0:
		return "out of memory or resources"
	case 2:
		return "file not found"
	case 3:
		return "path not found"
	case 5:
		return "access denied"
	case 8:
		return "out of memory"
	case 26:
		return "cannot share open file"
	case 27:
		return "file association incomplete or invalid"
	case 28:
		return "DDE timeout"
	case 29:
		return "DDE transaction failed"
	case 30:
		return "DDE busy"
	case 31:
		return "no file association"
	case 32:
		return "invalid executable file"
	default:
		return "unknown error"
	}
}
