package summarize

import (
	"context"
	"strings"
	"time"

	"github.com/orgball2608/social-media-reader/internal/command"
	"github.com/orgball2608/social-media-reader/internal/detect"
	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/tags"
	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Runner command.Runner
}

type Impl struct {
	bin     string
	timeout time.Duration
	runner  command.Runner
	logger  logger.Logger
}

func New(opts Opts) *Impl {
	return &Impl{
		bin:     opts.Config.Summarize.Bin,
		timeout: opts.Config.Summarize.Timeout,
		runner:  opts.Runner,
		logger:  opts.Logger.WithComponent("summarize"),
	}
}

var _ Client = (*Impl)(nil)

func (s *Impl) Extract(ctx context.Context, url string) (*domain.ExtractionResult, error) {
	if _, err := s.runner.LookPath(s.bin); err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.logger.Info("Falling back to summarize", "url", url)
	out, err := s.runner.Run(ctx, s.bin, url, "--extract-only")
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeStructureNotFound, "summarize could not extract the page")
	}

	body := strings.TrimSpace(string(out.Stdout))
	if body == "" {
		return nil, apperrors.NewWithCode(apperrors.CodeStructureNotFound, "summarize returned no text")
	}

	return &domain.ExtractionResult{
		Platform:  detect.Detect(url),
		SourceURL: url,
		Method:    domain.MethodSummarize,
		Images:    []string{},
		Text: domain.PostText{
			Body:     body,
			Hashtags: tags.Hashtags(body),
			Mentions: tags.Mentions(body),
		},
	}, nil
}
