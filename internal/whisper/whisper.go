// Package whisper transcribes audio with a locally installed whisper CLI.
package whisper

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/orgball2608/social-media-reader/internal/command"
	"github.com/orgball2608/social-media-reader/internal/video"
	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
)

// NoSpeech is returned when the model heard nothing.
const NoSpeech = "[No speech detected]"

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Runner command.Runner
}

type Impl struct {
	bin      string
	model    string
	language string
	runner   command.Runner
	logger   logger.Logger
}

func New(opts Opts) *Impl {
	return &Impl{
		bin:      opts.Config.Video.WhisperBin,
		model:    opts.Config.Video.WhisperModel,
		language: opts.Config.Video.WhisperLang,
		runner:   opts.Runner,
		logger:   opts.Logger.WithComponent("whisper"),
	}
}

var _ video.Transcriber = (*Impl)(nil)

func (w *Impl) Transcribe(ctx context.Context, audioPath string) (string, error) {
	outDir := filepath.Dir(audioPath)
	args := []string{
		audioPath,
		"--model", w.model,
		"--output_format", "txt",
		"--output_dir", outDir,
		"--fp16", "False",
		"--verbose", "False",
	}
	if w.language != "" {
		args = append(args, "--language", w.language)
	}

	if _, err := w.runner.Run(ctx, w.bin, args...); err != nil {
		return "", apperrors.Wrap(err, "local transcription failed")
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	raw, err := os.ReadFile(filepath.Join(outDir, base+".txt"))
	if err != nil {
		return "", apperrors.Wrap(err, "read whisper transcript")
	}

	text := strings.Join(strings.Fields(string(raw)), " ")
	if text == "" {
		return NoSpeech, nil
	}

	w.logger.Debug("Transcribed audio locally", "model", w.model, "chars", len(text))
	return text, nil
}
