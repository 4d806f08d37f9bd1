package desktop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrorKind classifies every failure a backend can return. The set is
// exhaustive from the caller's perspective: backends map each native failure
// signal to exactly one kind and never let raw native errors escape.
type ErrorKind int

const (
	// ErrFileNotFound means a supplied path does not resolve to a readable file.
	ErrFileNotFound ErrorKind = iota
	// ErrAPIFailure means the native subsystem reported a generic failure.
	// The wrapped error is diagnostic, for logging rather than branching.
	ErrAPIFailure
	// ErrNotification means notification construction or submission failed,
	// including actions requested on a backend that does not support them.
	ErrNotification
	// ErrPermissionDenied means the operating environment refused access.
	ErrPermissionDenied
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrFileNotFound:
		return "file not found"
	case ErrAPIFailure:
		return "api failure"
	case ErrNotification:
		return "notification error"
	case ErrPermissionDenied:
		return "permission denied"
	default:
		return "unknown"
	}
}

// Error is the typed failure all backend operations return. Op names the
// failing operation ("change_background", "send_notification", "open_file").
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a backend *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func errorf(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// checkPath verifies path exists and is readable, translating stat failures
// into the shared taxonomy. Backends call it before any native call so that a
// missing file is reported as ErrFileNotFound on every platform.
func checkPath(op, path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errorf(ErrFileNotFound, op, "%s does not exist", path)
	case errors.Is(err, fs.ErrPermission):
		return errorf(ErrPermissionDenied, op, "%s is not readable", path)
	case err != nil:
		return newError(ErrAPIFailure, op, err)
	case info.IsDir():
		return errorf(ErrFileNotFound, op, "%s is a directory", path)
	}
	return nil
}
