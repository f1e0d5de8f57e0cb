package instagramimpl

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/tags"
)

var ErrNoImages = errors.New("no display resources or embedded media images in page")

var (
	slashRe           = regexp.MustCompile(`\\+/`)
	quoteRe           = regexp.MustCompile(`\\+"`)
	ampRe             = regexp.MustCompile(`\\+u0026`)
	displayResourceRe = regexp.MustCompile(`"display_resources"\s*:\s*(\[[^\]]*\])`)
	ownerUsernameRe   = regexp.MustCompile(`"owner"\s*:\s*\{[^{}]*?"username"\s*:\s*"([^"]+)"`)
	imageKeyRe        = regexp.MustCompile(`/(\d+_\d+_\d+_n\.(?:jpg|jpeg|webp|heic))`)
)

type displayResource struct {
	Src          string `json:"src"`
	ConfigWidth  int    `json:"config_width"`
	ConfigHeight int    `json:"config_height"`
}

// Embed is what the embed page yields.
type Embed struct {
	Images     []string
	Username   string
	IsCarousel bool
	Text       domain.PostText
}

// ParseEmbed reads an embed page. Images come from the embedded display_resources
// JSON when present and from the rendered <img> srcset otherwise.
func ParseEmbed(page []byte) (*Embed, error) {
	unescaped := unescapeJSON(string(page))

	images := imagesFromDisplayResources(unescaped)

	doc, docErr := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if len(images) == 0 && docErr == nil {
		images = imagesFromSrcset(doc)
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	embed := &Embed{
		Images:     images,
		IsCarousel: len(images) > 1 || strings.Contains(strings.ToLower(unescaped), "sidecar"),
	}

	if m := ownerUsernameRe.FindStringSubmatch(unescaped); m != nil {
		embed.Username = m[1]
	}
	if docErr == nil {
		if embed.Username == "" {
			embed.Username = strings.TrimSpace(doc.Find(".UsernameText").First().Text())
		}
		embed.Text = captionText(doc)
	}

	return embed, nil
}

// unescapeJSON undoes one or more levels of JSON string escaping around the
// characters that matter for URL extraction.
func unescapeJSON(s string) string {
	s = slashRe.ReplaceAllString(s, "/")
	s = quoteRe.ReplaceAllString(s, `"`)
	s = ampRe.ReplaceAllString(s, "&")
	return s
}

func imagesFromDisplayResources(s string) []string {
	var urls []string
	for _, m := range displayResourceRe.FindAllStringSubmatch(s, -1) {
		var resources []displayResource
		if err := json.Unmarshal([]byte(m[1]), &resources); err != nil {
			continue
		}
		if best := widest(resources); best != "" {
			urls = append(urls, best)
		}
	}
	return dedupe(urls)
}

// widest returns the src with the largest config_width. Ties keep the first.
func widest(resources []displayResource) string {
	best, bestWidth := "", -1
	for _, r := range resources {
		if r.Src == "" {
			continue
		}
		if r.ConfigWidth > bestWidth {
			best, bestWidth = r.Src, r.ConfigWidth
		}
	}
	return strings.ReplaceAll(best, "&amp;", "&")
}

func imagesFromSrcset(doc *goquery.Document) []string {
	var urls []string
	doc.Find("img.EmbeddedMediaImage").Each(func(_ int, s *goquery.Selection) {
		if srcset, ok := s.Attr("srcset"); ok {
			if best := widestSrcset(srcset); best != "" {
				urls = append(urls, best)
				return
			}
		}
		if src, ok := s.Attr("src"); ok && src != "" {
			urls = append(urls, src)
		}
	})
	return dedupe(urls)
}

// widestSrcset picks the candidate with the largest "w" descriptor.
func widestSrcset(srcset string) string {
	best, bestWidth := "", -1
	for _, candidate := range strings.Split(srcset, ",") {
		fields := strings.Fields(strings.TrimSpace(candidate))
		if len(fields) == 0 {
			continue
		}
		width := 0
		if len(fields) > 1 && strings.HasSuffix(fields[1], "w") {
			width, _ = strconv.Atoi(strings.TrimSuffix(fields[1], "w"))
		}
		if width > bestWidth {
			best, bestWidth = fields[0], width
		}
	}
	return best
}

// dedupe removes repeats by image file key, then by full URL, keeping document
// order. A carousel's parent node repeats its first child, and profile pictures
// (t51.2885-19) are never post content.
func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.Contains(u, "2885-19") {
			continue
		}
		key := u
		if m := imageKeyRe.FindStringSubmatch(u); m != nil {
			key = m[1]
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, u)
	}
	return out
}

func captionText(doc *goquery.Document) domain.PostText {
	caption := doc.Find(".Caption").First()
	if caption.Length() == 0 {
		return domain.PostText{}
	}

	author := strings.TrimSpace(caption.Find(".CaptionUsername").First().Text())

	body := caption.Clone()
	body.Find(".CaptionUsername, .CaptionComments").Remove()
	body.Find("br").ReplaceWithHtml("\n")
	text := strings.TrimSpace(body.Text())

	return domain.PostText{
		Author:   author,
		Body:     text,
		Hashtags: tags.Hashtags(text),
		Mentions: tags.Mentions(text),
	}
}
