package instagram

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go

import (
	"context"

	"github.com/orgball2608/social-media-reader/internal/domain"
)

type Client interface {
	// Extract scrapes the public embed page of a post and returns its images at
	// maximum resolution together with username, caption and carousel metadata.
	Extract(ctx context.Context, postURL string) (*domain.ExtractionResult, error)
}
