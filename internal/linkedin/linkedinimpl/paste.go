package linkedinimpl

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/tags"
)

const (
	DefaultAuthorMaxLen   = 60
	DefaultHeadlineMaxLen = 150
)

var (
	engagementLineRe = regexp.MustCompile(`(?im)^[ \t]*[\d][\d,.]*[KkMm]?[ \t]*(likes?|comments?|reposts?|reactions?|shares?|impressions?)\b.*$`)
	seeMoreRe        = regexp.MustCompile(`(?i)(\.{3}|…)\s*(see\s+)?more\s*$`)
	blankRunRe       = regexp.MustCompile(`\n{3,}`)
)

// PasteParser splits copied post text into author, headline and body.
//
// The first line is the author when it is at most AuthorMaxLen runes and does not
// end like a sentence. The line right after it is the headline when it is at most
// HeadlineMaxLen runes, has no trailing punctuation and is followed by a blank
// line. Once a blank line has been passed no headline is looked for. A single
// line is always body.
type PasteParser struct {
	AuthorMaxLen   int
	HeadlineMaxLen int
}

func (p PasteParser) limits() (int, int) {
	author, headline := p.AuthorMaxLen, p.HeadlineMaxLen
	if author <= 0 {
		author = DefaultAuthorMaxLen
	}
	if headline <= 0 {
		headline = DefaultHeadlineMaxLen
	}
	return author, headline
}

func (p PasteParser) Parse(raw string) domain.PostText {
	text := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "\r\n", "\n"), "\r", "\n"))
	if text == "" {
		return domain.PostText{}
	}

	authorMax, headlineMax := p.limits()
	lines := strings.Split(text, "\n")

	var out domain.PostText
	rest := lines

	if len(lines) > 1 {
		first := strings.TrimSpace(lines[0])
		if looksLikeTitle(first, authorMax) {
			out.Author = first
			rest = lines[1:]

			if len(rest) > 1 {
				second := strings.TrimSpace(rest[0])
				if second != "" && strings.TrimSpace(rest[1]) == "" && looksLikeTitle(second, headlineMax) {
					out.Headline = second
					rest = rest[1:]
				}
			}
		}
	}

	out.Body = cleanBody(strings.Join(rest, "\n"))
	if out.Body == "" {
		// Nothing left but engagement noise: the last title-like line is the content.
		if out.Headline != "" {
			out.Body, out.Headline = out.Headline, ""
		} else {
			out.Body, out.Author = out.Author, ""
		}
	}
	out.Hashtags = tags.Hashtags(out.Body)
	out.Mentions = tags.Mentions(out.Body)
	return out
}

// looksLikeTitle holds for short lines that do not read as a sentence or a tag list.
func looksLikeTitle(line string, maxLen int) bool {
	if line == "" || utf8.RuneCountInString(line) > maxLen {
		return false
	}
	if strings.HasPrefix(line, "#") || strings.Contains(line, "://") {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(line)
	return !strings.ContainsRune(".!?:;,…", last)
}

func cleanBody(body string) string {
	body = engagementLineRe.ReplaceAllString(body, "")
	body = strings.TrimSpace(body)
	body = seeMoreRe.ReplaceAllString(body, "")
	body = blankRunRe.ReplaceAllString(body, "\n\n")
	return strings.TrimSpace(body)
}

// FormatPaste renders fields back into the layout Parse expects, so that
// Parse(FormatPaste(Parse(x))) equals Parse(x).
func FormatPaste(t domain.PostText) string {
	var sb strings.Builder
	if t.Author != "" {
		sb.WriteString(t.Author)
		sb.WriteString("\n")
		if t.Headline != "" {
			sb.WriteString(t.Headline)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(t.Body)
	return strings.TrimSpace(sb.String())
}
