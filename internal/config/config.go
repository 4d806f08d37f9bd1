// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultInterval = 60 // seconds between feed polls
	MinInterval     = 5

	ModeFit  = "fit"
	ModeCrop = "crop"
)

// Config mirrors the layout of the exported config file users download from
// the feed's web UI.
type Config struct {
	Base        BaseConfig        `toml:"base"`
	Feed        FeedConfig        `toml:"feed"`
	Preferences PreferencesConfig `toml:"preferences"`
}

// BaseConfig names the API endpoint. Usually left empty to use the default.
type BaseConfig struct {
	URL string `toml:"url,omitempty"`
}

// FeedConfig identifies which link to watch and the key used to respond.
type FeedConfig struct {
	ID    int64  `toml:"id"`
	Token string `toml:"token,omitempty"`
}

// PreferencesConfig holds user-facing behaviour switches.
type PreferencesConfig struct {
	Interval      int    `toml:"interval"`        // seconds between polls
	Mode          string `toml:"mode"`            // fit or crop
	SaveLocally   bool   `toml:"save_locally"`    // keep images in the pictures dir
	PicturesDir   string `toml:"pictures_dir"`    // override for the save location
	Notifications bool   `toml:"notifications"`   // raise a notification on change
	OpenForReview bool   `toml:"open_for_review"` // open the image after applying
}

// DefaultConfig returns a Config with default values. The feed id is zero and
// must be filled in before the daemon can run.
func DefaultConfig() *Config {
	return &Config{
		Preferences: PreferencesConfig{
			Interval:      DefaultInterval,
			Mode:          ModeFit,
			SaveLocally:   true,
			Notifications: true,
		},
	}
}

// ConfigPath returns the path to the config file under the XDG config home.
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "driftpaper", "config.toml")
}

// SaveDir returns the directory downloaded wallpapers are kept in when
// save_locally is enabled.
func (c *Config) SaveDir() string {
	if c.Preferences.PicturesDir != "" {
		return c.Preferences.PicturesDir
	}
	return filepath.Join(xdg.UserDirs.Pictures, "Driftpaper")
}

// PollInterval returns the poll interval as a duration, clamped to the
// minimum the feed tolerates.
func (c *Config) PollInterval() time.Duration {
	secs := c.Preferences.Interval
	if secs < MinInterval {
		secs = MinInterval
	}
	return time.Duration(secs) * time.Second
}

// Validate checks the fields the daemon depends on.
func (c *Config) Validate() error {
	if c.Feed.ID <= 0 {
		return errors.New("feed.id must be set (see 'driftpaper config init')")
	}
	switch c.Preferences.Mode {
	case "", ModeFit, ModeCrop:
	default:
		return fmt.Errorf("preferences.mode must be %q or %q, got %q", ModeFit, ModeCrop, c.Preferences.Mode)
	}
	return nil
}

// LoadConfig loads configuration from the specified path. If path is empty,
// the default location is used. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed. An empty path means the default location.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
