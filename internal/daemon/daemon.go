package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/driftpaper/driftpaper/internal/config"
	"github.com/driftpaper/driftpaper/internal/desktop"
	"github.com/driftpaper/driftpaper/internal/feed"
)

// FeedClient is the slice of the API client the poller needs.
type FeedClient interface {
	GetLink(ctx context.Context, id int64) (*feed.Link, error)
	Download(ctx context.Context, url, dest string) (int64, error)
}

// Poller drives the daemon: on every tick it fetches the watched link,
// downloads the image when it changed, applies it as the wallpaper, and
// raises a review notification.
type Poller struct {
	client   FeedClient
	desktop  desktop.API
	reviewer *Reviewer
	logger   *slog.Logger

	mu      sync.RWMutex
	cfg     *config.Config
	lastKey string // content key of the currently applied wallpaper
}

// NewPoller creates a poller. cfg must have passed Validate.
func NewPoller(client FeedClient, api desktop.API, cfg *config.Config, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		client:   client,
		desktop:  api,
		reviewer: NewReviewer(api, logger),
		logger:   logger,
		cfg:      cfg,
	}
}

// UpdateConfig swaps in a new configuration. Preference changes apply on the
// next tick; feed and base URL changes need a restart because the client is
// already bound to them.
func (p *Poller) UpdateConfig(cfg *config.Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cfg.Feed.ID != p.cfg.Feed.ID || cfg.Base.URL != p.cfg.Base.URL {
		p.logger.Warn("feed or base URL changed in config; restart to apply")
	}
	p.cfg = cfg
	p.logger.Info("configuration reloaded", "interval", cfg.PollInterval())
}

func (p *Poller) snapshot() *config.Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// Run polls until ctx is cancelled. The first poll happens immediately; poll
// failures are logged and retried on the next tick, never fatal.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("daemon started",
		"feed", p.snapshot().Feed.ID,
		"interval", p.snapshot().PollInterval(),
		"capabilities", p.desktop.Capabilities().String())

	for {
		if err := p.pollOnce(ctx); err != nil && ctx.Err() == nil {
			p.logger.Error("poll failed", "error", err)
		}

		timer := time.NewTimer(p.snapshot().PollInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			p.logger.Info("daemon stopped")
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// pollOnce performs a single fetch-compare-apply cycle.
func (p *Poller) pollOnce(ctx context.Context) error {
	cfg := p.snapshot()

	link, err := p.client.GetLink(ctx, cfg.Feed.ID)
	if err != nil {
		return err
	}
	if !link.HasPost() {
		p.logger.Debug("link has no wallpaper yet", "feed", cfg.Feed.ID)
		return nil
	}

	name := wallpaperFilename(link.PostURL)
	key := contentKey(name)

	p.mu.Lock()
	unchanged := key == p.lastKey
	p.mu.Unlock()
	if unchanged {
		p.logger.Debug("wallpaper unchanged", "file", name)
		return nil
	}

	dir := os.TempDir()
	if cfg.Preferences.SaveLocally {
		dir = cfg.SaveDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	dest := filepath.Join(dir, name)

	n, err := p.client.Download(ctx, link.PostURL, dest)
	if err != nil {
		return err
	}
	p.logger.Info("wallpaper downloaded",
		"file", name,
		"size", humanize.IBytes(uint64(n)),
		"set_by", link.SetByName())

	if err := p.desktop.ChangeBackground(dest); err != nil {
		return fmt.Errorf("applying wallpaper: %w", err)
	}

	p.mu.Lock()
	p.lastKey = key
	p.mu.Unlock()

	if cfg.Preferences.Notifications {
		p.reviewer.Review(link, dest, cfg.Preferences.OpenForReview)
	}
	return nil
}
