package linkedinimpl

import (
	"net/http"

	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/httputil"
	"github.com/orgball2608/social-media-reader/internal/linkedin"
	"github.com/orgball2608/social-media-reader/pkg/config"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
)

type LinkedInImpl struct {
	http        *http.Client
	oembedURL   string
	ogUserAgent string
	paste       PasteParser
	logger      logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *LinkedInImpl {
	return &LinkedInImpl{
		http:        httputil.NewClient(opts.Config.HTTP.Timeout),
		oembedURL:   opts.Config.LinkedIn.OEmbedURL,
		ogUserAgent: opts.Config.LinkedIn.OpenGraphUserAgent,
		paste: PasteParser{
			AuthorMaxLen:   opts.Config.LinkedIn.AuthorMaxLen,
			HeadlineMaxLen: opts.Config.LinkedIn.HeadlineMaxLen,
		},
		logger: opts.Logger.WithComponent("linkedin"),
	}
}

var _ linkedin.Client = (*LinkedInImpl)(nil)

func (l *LinkedInImpl) ParsePaste(raw string) *domain.ExtractionResult {
	text := l.paste.Parse(raw)
	l.logger.Debug("Parsed pasted post", "author", text.Author, "hashtags", len(text.Hashtags))

	return &domain.ExtractionResult{
		Platform: domain.PlatformLinkedIn,
		Method:   domain.MethodPaste,
		Images:   []string{},
		Text:     text,
	}
}
