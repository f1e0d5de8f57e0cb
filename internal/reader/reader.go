package reader

//go:generate go run go.uber.org/mock/mockgen -source=reader.go -destination=mocks/mock.go

import (
	"context"

	"github.com/orgball2608/social-media-reader/internal/domain"
)

// Options control a single run.
type Options struct {
	// Analyze sends the extracted images to the vision model.
	Analyze bool
	// ImagesOnly drops every text and metadata field and skips analysis.
	ImagesOnly bool
	// Prompt replaces the per-platform default prompt.
	Prompt string
	// Summarize falls back to the summarize tool when scraping is blocked.
	Summarize bool
	// Deep downloads videos for frame extraction and transcription.
	Deep bool
}

// Client is the single entry point used by the command line.
//
// The returned Result may be non-nil together with an error. It then holds what was
// extracted before the failure, including a work directory that must be removed.
type Client interface {
	ProcessURL(ctx context.Context, url string, opts Options) (*domain.Result, error)
	ProcessPaste(ctx context.Context, text string, opts Options) (*domain.Result, error)
	ProcessVideoFile(ctx context.Context, path string, opts Options) (*domain.Result, error)
}
