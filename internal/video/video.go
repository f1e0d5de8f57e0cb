package video

//go:generate go run go.uber.org/mock/mockgen -source=video.go -destination=mocks/mock.go

import (
	"context"
	"time"

	"github.com/orgball2608/social-media-reader/internal/domain"
)

// SilentTranscript marks audio too small to hold speech.
const SilentTranscript = "[No audio or silent video]"

// Metadata is what the downloader reports about a video without fetching it.
type Metadata struct {
	Extractor      string
	Title          string
	Description    string
	Uploader       string
	UploaderURL    string
	Duration       float64
	DurationString string
	ViewCount      int64
	LikeCount      int64
	UploadDate     string
	WebpageURL     string
	Thumbnail      string
	Thumbnails     []string
}

// BestThumbnail returns the preferred thumbnail, or "" when there is none.
func (m *Metadata) BestThumbnail() string {
	if m.Thumbnail != "" {
		return m.Thumbnail
	}
	if n := len(m.Thumbnails); n > 0 {
		return m.Thumbnails[n-1]
	}
	return ""
}

type Downloader interface {
	Metadata(ctx context.Context, url string) (*Metadata, error)
	// Download stores the media under dir and returns the file path.
	Download(ctx context.Context, url, dir string) (string, error)
}

type MediaProcessor interface {
	// Duration returns the media length in seconds.
	Duration(ctx context.Context, path string) (float64, error)
	ExtractFrames(ctx context.Context, path, dir string, interval time.Duration, maxFrames int) ([]string, error)
	// ExtractAudio writes a 16 kHz mono WAV file and returns its path.
	ExtractAudio(ctx context.Context, path, dir string) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type Client interface {
	// ProcessVideo reads metadata and a thumbnail for url. With deep set it also
	// downloads the media, extracts frames and transcribes the audio.
	ProcessVideo(ctx context.Context, url string, deep bool) (*domain.ExtractionResult, error)
	// ProcessVideoFile runs frame extraction and transcription on a local file.
	ProcessVideoFile(ctx context.Context, path string) (*domain.ExtractionResult, error)
}
