package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDesktop(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected DesktopEnvironment
	}{
		{
			name:     "plain gnome",
			env:      map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"},
			expected: DesktopGNOME,
		},
		{
			name:     "ubuntu colon list",
			env:      map[string]string{"XDG_CURRENT_DESKTOP": "ubuntu:GNOME"},
			expected: DesktopGNOME,
		},
		{
			name:     "pop shell",
			env:      map[string]string{"XDG_CURRENT_DESKTOP": "pop:GNOME"},
			expected: DesktopGNOME,
		},
		{
			name:     "desktop session fallback",
			env:      map[string]string{"DESKTOP_SESSION": "gnome-xorg"},
			expected: DesktopGNOME,
		},
		{
			name:     "kde",
			env:      map[string]string{"XDG_CURRENT_DESKTOP": "KDE"},
			expected: DesktopUnknown,
		},
		{
			name:     "empty environment",
			env:      map[string]string{},
			expected: DesktopUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			assert.Equal(t, tt.expected, detectDesktop(getenv))
		})
	}
}
