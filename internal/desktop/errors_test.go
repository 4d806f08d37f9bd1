package desktop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{ErrFileNotFound, "file not found"},
		{ErrAPIFailure, "api failure"},
		{ErrNotification, "notification error"},
		{ErrPermissionDenied, "permission denied"},
		{ErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	err := newError(ErrAPIFailure, "open_file", errors.New("boom"))
	assert.Equal(t, "open_file: api failure: boom", err.Error())

	bare := &Error{Kind: ErrFileNotFound, Op: "open_file"}
	assert.Equal(t, "open_file: file not found", bare.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := newError(ErrNotification, "send_notification", cause)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("dispatch: %w", err)
	var de *Error
	require.ErrorAs(t, wrapped, &de)
	assert.Equal(t, ErrNotification, de.Kind)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", newError(ErrPermissionDenied, "change_background", nil))

	assert.True(t, IsKind(err, ErrPermissionDenied))
	assert.False(t, IsKind(err, ErrAPIFailure))
	assert.False(t, IsKind(errors.New("plain"), ErrPermissionDenied))
	assert.False(t, IsKind(nil, ErrPermissionDenied))
}

func TestCheckPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(file, []byte("png"), 0o644))

	tests := []struct {
		name string
		path string
		kind ErrorKind
		ok   bool
	}{
		{name: "existing file", path: file, ok: true},
		{name: "missing file", path: filepath.Join(dir, "nope.png"), kind: ErrFileNotFound},
		{name: "directory", path: dir, kind: ErrFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPath("change_background", tt.path)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, IsKind(err, tt.kind), "got %v", err)
		})
	}
}
