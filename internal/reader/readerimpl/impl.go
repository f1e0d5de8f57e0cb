package readerimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/social-media-reader/internal/detect"
	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/httputil"
	"github.com/orgball2608/social-media-reader/internal/instagram"
	"github.com/orgball2608/social-media-reader/internal/linkedin"
	"github.com/orgball2608/social-media-reader/internal/reader"
	"github.com/orgball2608/social-media-reader/internal/summarize"
	"github.com/orgball2608/social-media-reader/internal/video"
	"github.com/orgball2608/social-media-reader/internal/vision"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
)

const warnVisionDisabled = "vision analysis skipped: GEMINI_API_KEY is not set"

type Opts struct {
	fx.In

	Logger    logger.Logger
	Instagram instagram.Client
	LinkedIn  linkedin.Client
	Video     video.Client
	Vision    vision.Client
	Summarize summarize.Client
}

type ReaderImpl struct {
	logger    logger.Logger
	instagram instagram.Client
	linkedin  linkedin.Client
	video     video.Client
	vision    vision.Client
	summarize summarize.Client
}

func New(opts Opts) *ReaderImpl {
	return &ReaderImpl{
		logger:    opts.Logger.WithComponent("reader"),
		instagram: opts.Instagram,
		linkedin:  opts.LinkedIn,
		video:     opts.Video,
		vision:    opts.Vision,
		summarize: opts.Summarize,
	}
}

var _ reader.Client = (*ReaderImpl)(nil)

func (r *ReaderImpl) ProcessURL(ctx context.Context, rawURL string, opts reader.Options) (*domain.Result, error) {
	url, err := httputil.ValidateURL(rawURL)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInvalidInput, "invalid URL")
	}

	platform := detect.Detect(url)
	r.logger.Info("Processing URL", "platform", platform, "url", url)

	res, err := r.extract(ctx, platform, url, opts)
	var warnings []string
	if err != nil && opts.Summarize && canSummarize(err) {
		r.logger.Warn("Extraction failed, trying summarize", "platform", platform, "error", err)
		fallback, ferr := r.summarize.Extract(ctx, url)
		if ferr != nil {
			return &domain.Result{Extraction: res}, apperrors.Wrap(err, "summarize fallback also failed ("+ferr.Error()+")")
		}
		warnings = append(warnings, "direct extraction failed, text recovered with summarize: "+err.Error())
		res, err = fallback, nil
	}
	if err != nil {
		return &domain.Result{Extraction: res}, err
	}

	out, err := r.finish(ctx, res, opts)
	out.Warnings = append(warnings, out.Warnings...)
	return out, err
}

func (r *ReaderImpl) ProcessPaste(ctx context.Context, text string, opts reader.Options) (*domain.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewWithCode(apperrors.CodeInvalidInput, "pasted text is empty")
	}
	return r.finish(ctx, r.linkedin.ParsePaste(text), opts)
}

func (r *ReaderImpl) ProcessVideoFile(ctx context.Context, path string, opts reader.Options) (*domain.Result, error) {
	res, err := r.video.ProcessVideoFile(ctx, path)
	if err != nil {
		return &domain.Result{Extraction: res}, err
	}
	return r.finish(ctx, res, opts)
}

func (r *ReaderImpl) extract(ctx context.Context, platform domain.Platform, url string, opts reader.Options) (*domain.ExtractionResult, error) {
	switch {
	case platform == domain.PlatformInstagram:
		return r.instagram.Extract(ctx, url)
	case platform == domain.PlatformLinkedIn:
		return r.linkedin.Extract(ctx, url)
	case platform.IsVideo():
		return r.video.ProcessVideo(ctx, url, opts.Deep)
	default:
		res := &domain.ExtractionResult{
			Platform:  domain.PlatformUnknown,
			SourceURL: url,
			Images:    []string{},
		}
		return res, apperrors.NewWithCode(apperrors.CodeDetectionMiss,
			fmt.Sprintf("unsupported platform for %s (supported: %s)", url, supportedPlatforms()))
	}
}

func supportedPlatforms() string {
	names := make([]string, 0, len(detect.Platforms()))
	for _, p := range detect.Platforms() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

// canSummarize reports whether a failure means the page exists but could not be scraped.
func canSummarize(err error) bool {
	switch apperrors.GetCode(err) {
	case apperrors.CodeDetectionMiss, apperrors.CodeStructureNotFound, apperrors.CodeAuthRequired:
		return true
	}
	return false
}

// finish applies the output mode and runs analysis when asked to.
func (r *ReaderImpl) finish(ctx context.Context, res *domain.ExtractionResult, opts reader.Options) (*domain.Result, error) {
	out := &domain.Result{Extraction: res}

	if opts.ImagesOnly {
		out.Extraction = res.ImagesOnly()
		return out, nil
	}
	if !opts.Analyze {
		return out, nil
	}

	images := res.AnalysisImages()
	if len(images) == 0 {
		r.logger.Debug("Nothing to analyze", "platform", res.Platform)
		return out, nil
	}
	if !r.vision.Enabled() {
		r.logger.Warn("Vision analysis disabled", "reason", "no API key")
		out.Warnings = append(out.Warnings, warnVisionDisabled)
		return out, nil
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = defaultPrompt(res)
	}
	prompt = withTranscript(prompt, res.Transcript)

	r.logger.Info("Analyzing images", "count", len(images))
	var (
		text string
		err  error
	)
	if len(images) == 1 {
		text, err = r.vision.AnalyzeImage(ctx, images[0], prompt)
	} else {
		text, err = r.vision.AnalyzeCarousel(ctx, images, prompt)
	}
	if err != nil {
		return out, apperrors.Wrap(err, "image analysis failed")
	}

	out.Analysis = &domain.AnalysisResult{
		Text:       text,
		Prompt:     prompt,
		ImageCount: len(images),
	}
	return out, nil
}
