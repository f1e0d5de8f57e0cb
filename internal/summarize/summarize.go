// Package summarize wraps the external summarize tool, used as a last resort when a
// page cannot be scraped directly.
package summarize

//go:generate go run go.uber.org/mock/mockgen -source=summarize.go -destination=mocks/mock.go

import (
	"context"

	"github.com/orgball2608/social-media-reader/internal/domain"
)

type Client interface {
	// Extract returns the readable text of url as the result body.
	Extract(ctx context.Context, url string) (*domain.ExtractionResult, error)
}
