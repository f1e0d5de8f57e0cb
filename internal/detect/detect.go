package detect

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/orgball2608/social-media-reader/internal/domain"
)

type rule struct {
	platform domain.Platform
	host     *regexp.Regexp
	loose    *regexp.Regexp
}

func newRule(platform domain.Platform, domains ...string) rule {
	quoted := make([]string, len(domains))
	for i, d := range domains {
		quoted[i] = regexp.QuoteMeta(d)
	}
	alt := strings.Join(quoted, "|")
	return rule{
		platform: platform,
		host:     regexp.MustCompile(`(?i)(^|\.)(` + alt + `)$`),
		loose:    regexp.MustCompile(`(?i)(^|[/.@])(` + alt + `)([/:?#]|$)`),
	}
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	newRule(domain.PlatformInstagram, "instagram.com", "instagr.am"),
	newRule(domain.PlatformLinkedIn, "linkedin.com", "lnkd.in"),
	newRule(domain.PlatformFacebook, "facebook.com", "fb.com", "fb.watch"),
	newRule(domain.PlatformYouTube, "youtube.com", "youtu.be", "youtube-nocookie.com"),
	newRule(domain.PlatformTikTok, "tiktok.com"),
}

// Detect classifies a URL. It never fails; anything unrecognised is PlatformUnknown.
// Only the host is matched when one can be parsed, so a platform URL embedded in
// the query of another does not count.
func Detect(rawURL string) domain.Platform {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return domain.PlatformUnknown
	}

	host := ""
	if u, err := url.Parse(s); err == nil {
		host = u.Hostname()
	}
	for _, r := range rules {
		if host != "" && r.host.MatchString(host) {
			return r.platform
		}
		// scheme-less input like "instagram.com/p/ABC" has no parsed host
		if host == "" && r.loose.MatchString(s) {
			return r.platform
		}
	}
	return domain.PlatformUnknown
}

// Platforms lists the detectable platforms in lookup order.
func Platforms() []domain.Platform {
	out := make([]domain.Platform, len(rules))
	for i, r := range rules {
		out[i] = r.platform
	}
	return out
}
