package feed

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the feed endpoint used when the config does not name one.
const DefaultBaseURL = "https://feed.driftpaper.dev/api/"

// normalizeBase ensures the base URL ends with a single trailing slash so the
// builders below can append relative paths.
func normalizeBase(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/"
}

// LinkURL returns the URL of the link JSON for id.
func LinkURL(base string, id int64) string {
	return fmt.Sprintf("%slinks/%d.json", normalizeBase(base), id)
}

// ResponseURL returns the URL responses for link id are posted to.
func ResponseURL(base string, id int64) string {
	return fmt.Sprintf("%slinks/%d/response.json", normalizeBase(base), id)
}

// LinkPageURL returns the human-facing web page for a link, derived from the
// API base by stripping the /api suffix.
func LinkPageURL(base string, id int64) string {
	root := strings.TrimRight(normalizeBase(base), "/")
	root = strings.TrimSuffix(root, "/api")
	return fmt.Sprintf("%s/links/%d", root, id)
}

// UserURL returns the URL of a user record; apiKey is appended as a query
// parameter when non-empty.
func UserURL(base, username, apiKey string) string {
	u := fmt.Sprintf("%susers/%s.json", normalizeBase(base), url.PathEscape(username))
	if apiKey != "" {
		u += "?api_key=" + url.QueryEscape(apiKey)
	}
	return u
}
