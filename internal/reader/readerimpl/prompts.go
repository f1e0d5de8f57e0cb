package readerimpl

import (
	"strings"

	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/video"
	"github.com/orgball2608/social-media-reader/internal/whisper"
)

const (
	promptSingleImage = "Describe this social media post image in detail."
	promptCarousel    = "These images are from a social media carousel post. Describe what each image shows and summarize the overall content/theme."
	promptInstagram   = "These images are from an Instagram carousel post. Describe what each image shows and summarize the overall content/theme."
	promptThumbnail   = "This is the thumbnail of a video post. Describe what it shows and what the video is likely about."
	promptFrames      = "These are frames extracted from a video at regular intervals. Describe what you see in each frame and summarize the overall video content."
)

// defaultPrompt picks the prompt for what is about to be analyzed.
func defaultPrompt(res *domain.ExtractionResult) string {
	switch {
	case len(res.Frames) > 0:
		return promptFrames
	case res.Platform.IsVideo():
		return promptThumbnail
	case len(res.Images) > 1 && res.Platform == domain.PlatformInstagram:
		return promptInstagram
	case len(res.Images) > 1:
		return promptCarousel
	default:
		return promptSingleImage
	}
}

// withTranscript appends speech so the model can relate it to what is on screen.
func withTranscript(prompt, transcript string) string {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" || transcript == video.SilentTranscript || transcript == whisper.NoSpeech {
		return prompt
	}
	return prompt + "\n\nAudio transcript:\n" + transcript
}
