package daemon

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftpaper/driftpaper/internal/config"
)

func TestConfigWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[feed]\nid = 1\n"), 0o644))

	var mu sync.Mutex
	var got *config.Config
	w := NewConfigWatcher(path, func(cfg *config.Config) {
		mu.Lock()
		got = cfg
		mu.Unlock()
	}, nil)
	w.settle = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("[feed]\nid = 2\n\n[preferences]\ninterval = 120\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil && got.Feed.ID == 2
	}, 3*time.Second, 25*time.Millisecond)

	mu.Lock()
	assert.Equal(t, 120, got.Preferences.Interval)
	mu.Unlock()
}

func TestConfigWatcherKeepsOldConfigOnInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[feed]\nid = 1\n"), 0o644))

	calls := make(chan *config.Config, 4)
	w := NewConfigWatcher(path, func(cfg *config.Config) { calls <- cfg }, nil)
	w.settle = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	// Corrupt TOML must not reach the callback.
	require.NoError(t, os.WriteFile(path, []byte("feed = {"), 0o644))

	select {
	case cfg := <-calls:
		t.Fatalf("unexpected reload with config %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestConfigWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[feed]\nid = 1\n"), 0o644))

	calls := make(chan *config.Config, 4)
	w := NewConfigWatcher(path, func(cfg *config.Config) { calls <- cfg }, nil)
	w.settle = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644))

	select {
	case <-calls:
		t.Fatal("sibling file write must not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
