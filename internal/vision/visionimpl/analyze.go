package visionimpl

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/orgball2608/social-media-reader/internal/httputil"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"google.golang.org/genai"
)

const (
	DefaultImagePrompt    = "Describe this image in detail. What do you see?"
	DefaultCarouselPrompt = "These images are from a social media carousel post. Describe what you see across all images and summarize the content."
	transcribePrompt      = "Transcribe this audio. Return only the transcription text, nothing else. If there is no speech, return '[No speech detected]'."
)

var extMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func (v *VisionImpl) AnalyzeImage(ctx context.Context, image, prompt string) (string, error) {
	if prompt == "" {
		prompt = DefaultImagePrompt
	}
	img, err := v.loadImage(ctx, image)
	if err != nil {
		return "", apperrors.WrapWithCode(err, apperrors.CodeAPIError, "load image for analysis")
	}
	return v.generate(ctx, v.model, []*genai.Part{genai.NewPartFromText(prompt), img})
}

func (v *VisionImpl) AnalyzeCarousel(ctx context.Context, images []string, prompt string) (string, error) {
	if len(images) == 0 {
		return "", apperrors.NewWithCode(apperrors.CodeInvalidInput, "no images to analyze")
	}
	if prompt == "" {
		prompt = DefaultCarouselPrompt
	}
	if v.maxImages > 0 && len(images) > v.maxImages {
		v.logger.Info("Limiting carousel analysis", "images", len(images), "max", v.maxImages)
		images = images[:v.maxImages]
	}

	parts := make([]*genai.Part, 0, len(images)+1)
	parts = append(parts, genai.NewPartFromText(prompt))
	for i, src := range images {
		img, err := v.loadImage(ctx, src)
		if err != nil {
			v.logger.Warn("Failed to load carousel image", "index", i+1, "error", err)
			parts = append(parts, genai.NewPartFromText(fmt.Sprintf("[Image %d failed to load: %v]", i+1, err)))
			continue
		}
		parts = append(parts, img)
	}
	return v.generate(ctx, v.model, parts)
}

func (v *VisionImpl) Transcribe(ctx context.Context, audioPath string) (string, error) {
	raw, err := os.ReadFile(audioPath)
	if err != nil {
		return "", apperrors.WrapWithCode(err, apperrors.CodeInvalidInput, "read audio for transcription")
	}
	if len(raw) > maxAudioBytes {
		v.logger.Warn("Audio too large, truncating", "bytes", len(raw), "max", maxAudioBytes)
		raw = raw[:maxAudioBytes]
	}

	model := v.audioModel
	if model == "" {
		model = v.model
	}
	return v.generate(ctx, model, []*genai.Part{
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromBytes(raw, "audio/wav"),
	})
}

// loadImage reads an http(s) URL or a local file into an inline part.
func (v *VisionImpl) loadImage(ctx context.Context, image string) (*genai.Part, error) {
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		body, err := httputil.Get(ctx, v.http, image, imageUserAgent, "image/*")
		if err != nil {
			return nil, err
		}
		return genai.NewPartFromBytes(body, sniffImageType(body, image)), nil
	}

	body, err := os.ReadFile(image)
	if err != nil {
		return nil, err
	}
	mime, ok := extMimeTypes[strings.ToLower(filepath.Ext(image))]
	if !ok {
		mime = sniffImageType(body, image)
	}
	return genai.NewPartFromBytes(body, mime), nil
}

func sniffImageType(body []byte, name string) string {
	if mime := http.DetectContentType(body); strings.HasPrefix(mime, "image/") {
		return mime
	}
	if mime, ok := extMimeTypes[strings.ToLower(filepath.Ext(strings.SplitN(name, "?", 2)[0]))]; ok {
		return mime
	}
	return "image/jpeg"
}
