package instagramimpl

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/httputil"
	"github.com/orgball2608/social-media-reader/internal/instagram"
	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
)

type InstaImpl struct {
	http      *http.Client
	baseURL   string
	userAgent string
	logger    logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *InstaImpl {
	return &InstaImpl{
		http:      httputil.NewClient(opts.Config.HTTP.Timeout),
		baseURL:   strings.TrimRight(opts.Config.Instagram.BaseURL, "/"),
		userAgent: opts.Config.Instagram.UserAgent,
		logger:    opts.Logger.WithComponent("instagram"),
	}
}

var _ instagram.Client = (*InstaImpl)(nil)

func (i *InstaImpl) Extract(ctx context.Context, postURL string) (*domain.ExtractionResult, error) {
	post, err := NormalizePostURL(postURL, i.baseURL)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInvalidInput, "invalid instagram URL")
	}
	embedURL := EmbedURL(post)

	i.logger.Debug("Fetching embed page", "url", embedURL)

	body, err := httputil.Get(ctx, i.http, embedURL, i.userAgent, "text/html")
	if err != nil {
		var se *httputil.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusTooManyRequests {
			return nil, apperrors.WrapWithCode(err, apperrors.CodeRateLimited, "instagram embed page rate limited")
		}
		return nil, apperrors.WrapWithCode(err, apperrors.CodeStructureNotFound, "instagram embed page unavailable")
	}

	embed, err := ParseEmbed(body)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeStructureNotFound, "instagram page structure not found")
	}

	i.logger.Info("Extracted instagram post", "images", len(embed.Images), "username", embed.Username, "carousel", embed.IsCarousel)

	return &domain.ExtractionResult{
		Platform:  domain.PlatformInstagram,
		SourceURL: postURL,
		Method:    domain.MethodEmbed,
		Images:    embed.Images,
		Text:      embed.Text,
		Metadata: map[string]any{
			domain.MetaUsername:   embed.Username,
			domain.MetaPostURL:    post,
			domain.MetaShortcode:  Shortcode(post),
			domain.MetaImageCount: len(embed.Images),
			domain.MetaIsCarousel: embed.IsCarousel,
		},
	}, nil
}
