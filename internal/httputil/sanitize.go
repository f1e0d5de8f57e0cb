package httputil

import (
	"fmt"
	"net/netip"
	"net/url"
	"regexp"
	"strings"
)

var blockedHostPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^localhost$`),
	regexp.MustCompile(`\.localhost$`),
	regexp.MustCompile(`^metadata\.google\.internal$`),
}

// ValidateURL checks that a user supplied URL is http(s) and does not target a
// loopback, private, link-local or metadata host. It returns the trimmed URL.
func ValidateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("URL must be a non-empty string")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("URL has no host")
	}

	for _, p := range blockedHostPatterns {
		if p.MatchString(host) {
			return "", fmt.Errorf("URL targets a blocked host: %s", host)
		}
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		if addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() ||
			addr.IsUnspecified() || (addr.Is4() && addr.As4()[0] == 0) {
			return "", fmt.Errorf("URL targets a blocked host: %s", host)
		}
	}

	return rawURL, nil
}

// StripQuery drops the query string and fragment from a URL.
func StripQuery(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
