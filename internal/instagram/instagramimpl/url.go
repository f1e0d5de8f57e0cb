package instagramimpl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var shortcodeRe = regexp.MustCompile(`/(?:p|reel|reels|tv)/([A-Za-z0-9_-]+)`)

// NormalizePostURL drops query and fragment and rebuilds the post URL on base,
// always with a trailing slash.
func NormalizePostURL(rawURL, base string) (string, error) {
	parsedURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	path := strings.TrimRight(parsedURL.Path, "/")
	if path == "" {
		return "", fmt.Errorf("URL %q has no post path", rawURL)
	}

	return strings.TrimRight(base, "/") + path + "/", nil
}

// EmbedURL returns the captioned embed variant of a normalized post URL.
func EmbedURL(postURL string) string {
	return strings.TrimRight(postURL, "/") + "/embed/captioned/"
}

// Shortcode extracts the post id from /p/, /reel/ or /tv/ URLs.
func Shortcode(postURL string) string {
	m := shortcodeRe.FindStringSubmatch(postURL)
	if m == nil {
		return ""
	}
	return m[1]
}
