package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultInterval, cfg.Preferences.Interval)
	assert.Equal(t, ModeFit, cfg.Preferences.Mode)
	assert.True(t, cfg.Preferences.SaveLocally)
	assert.True(t, cfg.Preferences.Notifications)
	assert.Zero(t, cfg.Feed.ID)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[base]
url = "https://example.com/api/"

[feed]
id = 42
token = "k3y"

[preferences]
interval = 120
mode = "crop"
save_locally = false
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/api/", cfg.Base.URL)
	assert.Equal(t, int64(42), cfg.Feed.ID)
	assert.Equal(t, "k3y", cfg.Feed.Token)
	assert.Equal(t, 120, cfg.Preferences.Interval)
	assert.Equal(t, ModeCrop, cfg.Preferences.Mode)
	assert.False(t, cfg.Preferences.SaveLocally)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("feed = {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Feed.ID = 7
	cfg.Feed.Token = "secret"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPollInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval int
		expected time.Duration
	}{
		{"default", DefaultInterval, 60 * time.Second},
		{"custom", 300, 300 * time.Second},
		{"clamped", 1, MinInterval * time.Second},
		{"zero clamped", 0, MinInterval * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Preferences.Interval = tt.interval
			assert.Equal(t, tt.expected, cfg.PollInterval())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) { c.Feed.ID = 1 },
			wantErr: "",
		},
		{
			name:    "missing feed id",
			mutate:  func(c *Config) {},
			wantErr: "feed.id",
		},
		{
			name: "bad mode",
			mutate: func(c *Config) {
				c.Feed.ID = 1
				c.Preferences.Mode = "stretch"
			},
			wantErr: "preferences.mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSaveDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preferences.PicturesDir = "/tmp/walls"
	assert.Equal(t, "/tmp/walls", cfg.SaveDir())
}

func TestImportFrom(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "downloads", ImportFilename)
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))
	require.NoError(t, os.WriteFile(src, []byte("[feed]\nid = 9\n"), 0o644))

	dest := filepath.Join(dir, "config", "config.toml")
	found, err := importFrom([]string{
		filepath.Join(dir, "missing", ImportFilename),
		src,
	}, dest)
	require.NoError(t, err)
	assert.Equal(t, src, found)

	cfg, err := LoadConfig(dest)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Feed.ID)
}

func TestImportFromNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := importFrom([]string{filepath.Join(dir, ImportFilename)}, filepath.Join(dir, "dest.toml"))
	assert.ErrorIs(t, err, ErrImportNotFound)
}

func TestImportFromRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, ImportFilename)
	require.NoError(t, os.WriteFile(src, []byte("feed = {"), 0o644))

	dest := filepath.Join(dir, "dest.toml")
	_, err := importFrom([]string{src}, dest)
	assert.Error(t, err)
	assert.NoFileExists(t, dest)
}
