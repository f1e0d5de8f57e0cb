package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/pkg/formatter"
)

// maxMarkdownBody bounds long fields; Telegram rejects messages over 4096 characters.
const maxMarkdownBody = 3000

type format int

const (
	formatHuman format = iota
	formatJSON
	formatMarkdown
)

func outputFormat(f *flags) format {
	switch {
	case f.json:
		return formatJSON
	case f.markdown:
		return formatMarkdown
	default:
		return formatHuman
	}
}

func render(w io.Writer, res *domain.Result, fm format, imagesOnly bool) error {
	if res == nil || res.Extraction == nil {
		return nil
	}
	switch fm {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case formatMarkdown:
		_, err := io.WriteString(w, renderMarkdown(res, imagesOnly))
		return err
	default:
		renderHuman(w, res, imagesOnly)
		return nil
	}
}

// metaField is a metadata entry shown in summaries, in display order.
type metaField struct {
	key   string
	label string
}

var summaryFields = []metaField{
	{domain.MetaUsername, "Username"},
	{domain.MetaTitle, "Title"},
	{domain.MetaUploader, "Uploader"},
	{domain.MetaDuration, "Duration"},
	{domain.MetaViewCount, "Views"},
	{domain.MetaLikeCount, "Likes"},
	{domain.MetaUploadDate, "Uploaded"},
	{domain.MetaPostURL, "Post"},
	{domain.MetaWebpageURL, "Page"},
}

func renderHuman(w io.Writer, res *domain.Result, imagesOnly bool) {
	ex := res.Extraction
	if imagesOnly {
		for _, img := range ex.Images {
			fmt.Fprintln(w, img)
		}
		return
	}

	head := color.New(color.FgCyan, color.Bold)
	label := color.New(color.Bold)

	head.Fprintf(w, "%s", strings.ToUpper(ex.Platform.String()))
	if ex.Method != "" {
		fmt.Fprintf(w, " (%s)", ex.Method)
	}
	fmt.Fprintln(w)

	for _, f := range summaryFields {
		if v := metaValue(ex.Metadata, f.key); v != "" {
			label.Fprintf(w, "%s: ", f.label)
			fmt.Fprintln(w, v)
		}
	}

	t := ex.Text
	if t.Author != "" {
		label.Fprint(w, "Author: ")
		fmt.Fprintln(w, t.Author)
	}
	if t.Headline != "" {
		label.Fprint(w, "Headline: ")
		fmt.Fprintln(w, t.Headline)
	}
	if t.Body != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, t.Body)
	}
	if len(t.Hashtags) > 0 {
		label.Fprint(w, "Hashtags: ")
		fmt.Fprintln(w, "#"+strings.Join(t.Hashtags, " #"))
	}
	if len(t.Mentions) > 0 {
		label.Fprint(w, "Mentions: ")
		fmt.Fprintln(w, "@"+strings.Join(t.Mentions, " @"))
	}

	if len(ex.Images) > 0 {
		fmt.Fprintln(w)
		head.Fprintf(w, "Images (%d)\n", len(ex.Images))
		for i, img := range ex.Images {
			fmt.Fprintf(w, "%d. %s\n", i+1, img)
		}
	}
	if ex.Transcript != "" {
		fmt.Fprintln(w)
		head.Fprintln(w, "Transcript")
		fmt.Fprintln(w, ex.Transcript)
	}
	if res.Analysis != nil {
		fmt.Fprintln(w)
		head.Fprintf(w, "Analysis (%d images)\n", res.Analysis.ImageCount)
		fmt.Fprintln(w, res.Analysis.Text)
	}
	for _, warn := range res.Warnings {
		color.New(color.FgYellow).Fprintf(w, "warning: %s\n", warn)
	}
}

// renderMarkdown formats a result as a Telegram MarkdownV2 message.
func renderMarkdown(res *domain.Result, imagesOnly bool) string {
	ex := res.Extraction
	esc := formatter.EscapeMarkdownV2
	var sb strings.Builder

	if imagesOnly {
		for _, img := range ex.Images {
			sb.WriteString(esc(img))
			sb.WriteString("\n")
		}
		return sb.String()
	}

	fmt.Fprintf(&sb, "*%s*", esc(strings.ToUpper(ex.Platform.String())))
	if ex.Method != "" {
		fmt.Fprintf(&sb, " _%s_", esc(ex.Method))
	}
	sb.WriteString("\n")

	for _, f := range summaryFields {
		if v := metaValue(ex.Metadata, f.key); v != "" {
			fmt.Fprintf(&sb, "*%s:* %s\n", esc(f.label), esc(v))
		}
	}
	if ex.Text.Author != "" {
		fmt.Fprintf(&sb, "*Author:* %s\n", esc(ex.Text.Author))
	}
	if ex.Text.Headline != "" {
		fmt.Fprintf(&sb, "_%s_\n", esc(ex.Text.Headline))
	}
	if ex.Text.Body != "" {
		fmt.Fprintf(&sb, "\n%s\n", esc(formatter.Truncate(ex.Text.Body, maxMarkdownBody)))
	}
	for i, img := range ex.Images {
		fmt.Fprintf(&sb, "[Image %d](%s)\n", i+1, escapeLinkURL(img))
	}
	if res.Analysis != nil {
		fmt.Fprintf(&sb, "\n*Analysis*\n%s\n", esc(formatter.Truncate(res.Analysis.Text, maxMarkdownBody)))
	}
	return sb.String()
}

// escapeLinkURL escapes what MarkdownV2 requires inside the (...) part of a link.
func escapeLinkURL(u string) string {
	return strings.NewReplacer(`\`, `\\`, `)`, `\)`).Replace(u)
}

func metaValue(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	switch key {
	case domain.MetaDuration:
		if s, ok := m[domain.MetaDurationText].(string); ok && s != "" {
			return s
		}
		if d, ok := v.(float64); ok {
			return formatter.FormatDuration(d)
		}
	case domain.MetaViewCount, domain.MetaLikeCount:
		switch n := v.(type) {
		case int64:
			return formatter.FormatNumber(n)
		case int:
			return formatter.FormatNumber(int64(n))
		case float64:
			return formatter.FormatNumber(int64(n))
		}
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
