package daemon

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/driftpaper/driftpaper/internal/config"
)

// ConfigWatcher watches the config file for changes and delivers reloaded
// configurations to a callback. The parent directory is watched rather than
// the file itself because most editors replace the file on save.
type ConfigWatcher struct {
	path     string
	logger   *slog.Logger
	onChange func(*config.Config)

	// debounce interval between a write event and the reload, coalescing
	// editor write bursts
	settle time.Duration
}

// NewConfigWatcher creates a watcher for the config file at path.
func NewConfigWatcher(path string, onChange func(*config.Config), logger *slog.Logger) *ConfigWatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConfigWatcher{
		path:     path,
		logger:   logger,
		onChange: onChange,
		settle:   200 * time.Millisecond,
	}
}

// Start begins watching until ctx is cancelled. It returns an error only
// when the watch cannot be established; later reload failures are logged and
// the previous configuration stays active.
func (w *ConfigWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}

	go w.loop(ctx, watcher)
	w.logger.Debug("config watcher started", "path", w.path)
	return nil
}

func (w *ConfigWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(w.settle)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)

		case <-pending:
			pending = nil
			w.reload()
		}
	}
}

func (w *ConfigWatcher) reload() {
	cfg, err := config.LoadConfig(w.path)
	if err != nil {
		w.logger.Warn("config reload failed; keeping previous configuration", "error", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		w.logger.Warn("reloaded config invalid; keeping previous configuration", "error", err)
		return
	}
	w.onChange(cfg)
}
