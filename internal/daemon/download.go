package daemon

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path"
	"strings"
)

// wallpaperFilename derives a safe local filename from the post URL: the
// final path segment, sanitized, with a stem/extension fallback when the URL
// does not parse or carries no usable name.
func wallpaperFilename(postURL string) string {
	segment := ""
	if u, err := url.Parse(postURL); err == nil {
		segment = path.Base(u.Path)
		if segment == "." || segment == "/" {
			segment = ""
		}
	}
	if segment == "" {
		segment = sanitize(postURL)
	}

	stem := strings.TrimSuffix(segment, path.Ext(segment))
	ext := strings.TrimPrefix(path.Ext(segment), ".")
	if stem = sanitize(stem); stem == "" {
		stem = "image"
	}
	if ext == "" {
		ext = "png"
	}
	return stem + "." + ext
}

// sanitize keeps ASCII letters, digits, '-' and '_', replacing everything
// else with '_' so the result is a portable filename component.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

// contentKey hashes a derived filename into the dedupe key that decides
// whether a poll result is a new wallpaper.
func contentKey(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}
