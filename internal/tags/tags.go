// Package tags pulls hashtags and mentions out of free text.
package tags

import (
	"regexp"
	"strings"
)

var (
	hashtagRe = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_&#/])#([\p{L}\p{N}_]+)`)
	mentionRe = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_.@/])@([\p{L}\p{N}_.\-]*[\p{L}\p{N}_])`)
)

// Hashtags returns the tags in s without the leading '#', in order of first
// appearance. Duplicates are matched case-insensitively and the first spelling
// is kept, so "#ai #AI" yields ["ai"].
func Hashtags(s string) []string {
	return collect(hashtagRe, s)
}

// Mentions returns @handles in s without the leading '@', deduplicated the same way as Hashtags.
func Mentions(s string) []string {
	return collect(mentionRe, s)
}

func collect(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := m[1]
		if isDigits(tag) {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// isDigits rejects "#1" style ordinals, which are not tags.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
