package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		id       int64
		expected string
	}{
		{"default base", "", 42, "https://feed.driftpaper.dev/api/links/42.json"},
		{"trailing slash", "https://example.com/api/", 7, "https://example.com/api/links/7.json"},
		{"no trailing slash", "https://example.com/api", 7, "https://example.com/api/links/7.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LinkURL(tt.base, tt.id))
		})
	}
}

func TestResponseURL(t *testing.T) {
	assert.Equal(t,
		"https://example.com/api/links/42/response.json",
		ResponseURL("https://example.com/api", 42))
}

func TestLinkPageURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		expected string
	}{
		{"default base", "", "https://feed.driftpaper.dev/links/42"},
		{"custom api base", "https://example.com/api/", "https://example.com/links/42"},
		{"base without api suffix", "https://example.com/", "https://example.com/links/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LinkPageURL(tt.base, 42))
		})
	}
}

func TestUserURL(t *testing.T) {
	tests := []struct {
		name     string
		username string
		apiKey   string
		expected string
	}{
		{"without key", "gray", "", "https://example.com/api/users/gray.json"},
		{"with key", "gray", "k3y", "https://example.com/api/users/gray.json?api_key=k3y"},
		{"escaped key", "gray", "a&b", "https://example.com/api/users/gray.json?api_key=a%26b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserURL("https://example.com/api/", tt.username, tt.apiKey))
		})
	}
}
