package desktop

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGnomeCapabilities(t *testing.T) {
	g := NewGnomeBackend(nil)
	caps := g.Capabilities()

	assert.True(t, caps.Has(CapWallpaper))
	assert.True(t, caps.Has(CapNotifications))
	assert.True(t, caps.Has(CapNotificationActions))
	assert.True(t, caps.Has(CapFileOpen))

	// Pure and deterministic within a process.
	assert.Equal(t, caps, g.Capabilities())
}

func TestGnomeChangeBackgroundMissingFile(t *testing.T) {
	g := NewGnomeBackend(nil)
	err := g.ChangeBackground(filepath.Join(t.TempDir(), "missing.png"))
	assert.True(t, IsKind(err, ErrFileNotFound), "got %v", err)
}

func TestGnomeOpenFileMissing(t *testing.T) {
	g := NewGnomeBackend(nil)
	err := g.OpenFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.True(t, IsKind(err, ErrFileNotFound), "got %v", err)
}

func TestFileURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file URIs formatted differently on windows")
	}

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"plain", "/home/user/wall.png", "file:///home/user/wall.png"},
		{"spaces", "/home/user/my wall.png", "file:///home/user/my%20wall.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := fileURI(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, uri)
		})
	}
}
