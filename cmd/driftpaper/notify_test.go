package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftpaper/driftpaper/internal/desktop"
)

func TestParseUrgency(t *testing.T) {
	tests := []struct {
		in       string
		expected desktop.Urgency
		wantErr  bool
	}{
		{"low", desktop.UrgencyLow, false},
		{"normal", desktop.UrgencyNormal, false},
		{"NORMAL", desktop.UrgencyNormal, false},
		{"critical", desktop.UrgencyCritical, false},
		{"", desktop.UrgencyNormal, false},
		{"urgent", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			u, err := parseUrgency(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}
}
