package vision

//go:generate go run go.uber.org/mock/mockgen -source=vision.go -destination=mocks/mock.go

import "context"

// Client sends images or audio to a remote multimodal model. It knows nothing
// about where the images came from.
type Client interface {
	// Enabled is false when no API key is configured.
	Enabled() bool
	// AnalyzeImage describes one image given as a URL or local path.
	AnalyzeImage(ctx context.Context, image, prompt string) (string, error)
	// AnalyzeCarousel sends several images in one request so the model can compare them.
	AnalyzeCarousel(ctx context.Context, images []string, prompt string) (string, error)
	// Transcribe returns the speech in a WAV file.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
