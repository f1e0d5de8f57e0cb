package linkedin

//go:generate go run go.uber.org/mock/mockgen -source=linkedin.go -destination=mocks/mock.go

import (
	"context"

	"github.com/orgball2608/social-media-reader/internal/domain"
)

type Client interface {
	// ExtractOEmbed asks the public oEmbed endpoint for title and author.
	// Failures carry the auth_required code since most posts sit behind a login.
	ExtractOEmbed(ctx context.Context, postURL string) (*domain.ExtractionResult, error)
	// Extract tries oEmbed and then the page's OpenGraph tags.
	Extract(ctx context.Context, postURL string) (*domain.ExtractionResult, error)
	// ParsePaste turns text copied from a post into structured fields.
	ParsePaste(raw string) *domain.ExtractionResult
}
