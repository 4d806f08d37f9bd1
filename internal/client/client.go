// Package client implements the HTTP client for the wallpaper feed API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/driftpaper/driftpaper/internal/feed"
)

// PlaceholderToken is the value shipped in exported config files before the
// user fills in a real API key. Authenticated calls refuse it.
const PlaceholderToken = "your_token"

// ErrMissingToken is returned when an authenticated call is attempted
// without a usable API key.
var ErrMissingToken = errors.New("missing or placeholder API token")

const defaultTimeout = 30 * time.Second

// Client talks to one feed endpoint. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	logger  *slog.Logger
}

// New creates a client for the given base URL. token may be empty for
// read-only use; logger may be nil.
func New(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: baseURL,
		token:   token,
		logger:  logger,
	}
}

// GetLink fetches the link record for id.
func (c *Client) GetLink(ctx context.Context, id int64) (*feed.Link, error) {
	var link feed.Link
	if err := c.getJSON(ctx, feed.LinkURL(c.baseURL, id), &link); err != nil {
		return nil, fmt.Errorf("fetching link %d: %w", id, err)
	}
	return &link, nil
}

// GetUser fetches the user record for username. The client's token is used
// when present; the endpoint also works unauthenticated.
func (c *Client) GetUser(ctx context.Context, username string) (*feed.User, error) {
	key := c.token
	if key == PlaceholderToken {
		key = ""
	}
	var user feed.User
	if err := c.getJSON(ctx, feed.UserURL(c.baseURL, username, key), &user); err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", username, err)
	}
	return &user, nil
}

// PostResponse posts a reaction for link id and returns the updated link.
// It refuses to send the placeholder token.
func (c *Client) PostResponse(ctx context.Context, id int64, typ feed.ResponseType, text string) (*feed.Link, error) {
	if c.token == "" || c.token == PlaceholderToken {
		return nil, ErrMissingToken
	}

	body, err := json.Marshal(feed.NewResponse(c.token, typ, text))
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, feed.ResponseURL(c.baseURL, id), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting response for link %d: %w", id, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("posting response for link %d: %w", id, err)
	}

	var link feed.Link
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return nil, fmt.Errorf("decoding response for link %d: %w", id, err)
	}
	return &link, nil
}

// Download fetches url and writes it to dest, returning the byte count.
// The destination is written atomically via a temp file so a partial
// download never masquerades as a wallpaper.
func (c *Client) Download(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return 0, fmt.Errorf("downloading %s: %w", url, err)
	}

	tmp, err := os.CreateTemp("", "driftpaper-dl-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("writing %s: %w", dest, err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		// Rename fails across filesystems; fall back to a copy.
		if copyErr := copyFile(tmp.Name(), dest); copyErr != nil {
			return 0, fmt.Errorf("writing %s: %w", dest, copyErr)
		}
	}
	return n, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("unexpected status %s", resp.Status)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
