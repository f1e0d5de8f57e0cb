package linkedinimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/httputil"
	"github.com/orgball2608/social-media-reader/internal/tags"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
)

const oembedUserAgent = "curl/7.0"

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	AuthorURL    string `json:"author_url"`
	ProviderName string `json:"provider_name"`
	HTML         string `json:"html"`
}

func (l *LinkedInImpl) ExtractOEmbed(ctx context.Context, postURL string) (*domain.ExtractionResult, error) {
	// share links carry tracking parameters the oEmbed endpoint rejects
	endpoint := l.oembedURL + "?url=" + url.QueryEscape(httputil.StripQuery(postURL)) + "&format=json"

	body, err := httputil.Get(ctx, l.http, endpoint, oembedUserAgent, "application/json")
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeAuthRequired, "linkedin oEmbed lookup failed")
	}

	var data oembedResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeAuthRequired, "linkedin oEmbed response not understood")
	}
	if data.Title == "" && data.AuthorName == "" {
		return nil, apperrors.NewWithCode(apperrors.CodeAuthRequired, "linkedin oEmbed returned no title or author")
	}

	provider := data.ProviderName
	if provider == "" {
		provider = "LinkedIn"
	}

	return &domain.ExtractionResult{
		Platform:  domain.PlatformLinkedIn,
		SourceURL: postURL,
		Method:    domain.MethodOEmbed,
		Images:    []string{},
		Text: domain.PostText{
			Author:   data.AuthorName,
			Body:     data.Title,
			Hashtags: tags.Hashtags(data.Title),
			Mentions: tags.Mentions(data.Title),
		},
		Metadata: map[string]any{
			domain.MetaTitle:        data.Title,
			domain.MetaAuthorURL:    data.AuthorURL,
			domain.MetaProviderName: provider,
		},
	}, nil
}

func (l *LinkedInImpl) Extract(ctx context.Context, postURL string) (*domain.ExtractionResult, error) {
	res, oembedErr := l.ExtractOEmbed(ctx, postURL)
	if oembedErr == nil {
		return res, nil
	}
	l.logger.Info("oEmbed unavailable, trying OpenGraph tags", "error", oembedErr)

	res, ogErr := l.extractOpenGraph(ctx, postURL)
	if ogErr == nil {
		return res, nil
	}
	l.logger.Info("OpenGraph fallback failed", "error", ogErr)

	return nil, apperrors.WrapWithCode(
		errors.Join(oembedErr, ogErr),
		apperrors.CodeAuthRequired,
		"linkedin content requires authentication",
	)
}

func (l *LinkedInImpl) extractOpenGraph(ctx context.Context, postURL string) (*domain.ExtractionResult, error) {
	body, err := httputil.Get(ctx, l.http, postURL, l.ogUserAgent, "text/html")
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	title := metaContent(doc, "og:title")
	description := metaContent(doc, "og:description")
	image := metaContent(doc, "og:image")

	if title == "" && description == "" {
		return nil, errors.New("page has no OpenGraph title or description")
	}

	images := []string{}
	if image != "" {
		images = append(images, image)
	}

	return &domain.ExtractionResult{
		Platform:  domain.PlatformLinkedIn,
		SourceURL: postURL,
		Method:    domain.MethodOpenGraph,
		Images:    images,
		Text: domain.PostText{
			Headline: title,
			Body:     description,
			Hashtags: tags.Hashtags(description),
			Mentions: tags.Mentions(description),
		},
		Metadata: map[string]any{
			domain.MetaTitle:       title,
			domain.MetaDescription: description,
		},
	}, nil
}

// metaContent reads <meta property=...> and falls back to <meta name=...>.
func metaContent(doc *goquery.Document, key string) string {
	for _, attr := range []string{"property", "name"} {
		if v, ok := doc.Find(fmt.Sprintf(`meta[%s=%q]`, attr, key)).First().Attr("content"); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
