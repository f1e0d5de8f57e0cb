package visionimpl

import (
	"context"
	"net/http"

	"github.com/orgball2608/social-media-reader/internal/httputil"
	"github.com/orgball2608/social-media-reader/internal/vision"
	"github.com/orgball2608/social-media-reader/pkg/config"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"github.com/orgball2608/social-media-reader/pkg/retry"
	"go.uber.org/fx"
	"google.golang.org/genai"
)

const (
	// maxAudioBytes caps the raw audio sent for transcription.
	maxAudioBytes = 10_000_000
	// imageUserAgent is the client identity used to fetch CDN images.
	imageUserAgent = "curl/7.0"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type VisionImpl struct {
	client     *genai.Client
	http       *http.Client
	model      string
	audioModel string
	maxImages  int
	retry      retry.Config
	logger     logger.Logger
}

func New(opts Opts) *VisionImpl {
	c := opts.Config.Vision
	v := &VisionImpl{
		http:       httputil.NewClient(c.Timeout),
		model:      c.Model,
		audioModel: c.AudioModel,
		maxImages:  c.MaxImages,
		retry:      retry.FromAttempts(c.MaxAttempts, c.BaseDelay, c.MaxDelay),
		logger:     opts.Logger.WithComponent("vision"),
	}
	if c.APIKey == "" {
		return v
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     c.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: v.http,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    c.BaseURL,
			APIVersion: c.APIVersion,
		},
	})
	if err != nil {
		v.logger.Warn("Vision client unavailable, analysis disabled", "error", err)
		return v
	}
	v.client = client
	return v
}

var _ vision.Client = (*VisionImpl)(nil)

func (v *VisionImpl) Enabled() bool {
	return v.client != nil
}
