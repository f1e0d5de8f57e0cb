package app

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/orgball2608/social-media-reader/internal/command"
	"github.com/orgball2608/social-media-reader/internal/command/commandimpl"
	"github.com/orgball2608/social-media-reader/internal/ffmpeg"
	"github.com/orgball2608/social-media-reader/internal/instagram"
	"github.com/orgball2608/social-media-reader/internal/instagram/instagramimpl"
	"github.com/orgball2608/social-media-reader/internal/linkedin"
	"github.com/orgball2608/social-media-reader/internal/linkedin/linkedinimpl"
	"github.com/orgball2608/social-media-reader/internal/reader"
	"github.com/orgball2608/social-media-reader/internal/reader/readerimpl"
	"github.com/orgball2608/social-media-reader/internal/summarize"
	"github.com/orgball2608/social-media-reader/internal/video"
	"github.com/orgball2608/social-media-reader/internal/video/videoimpl"
	"github.com/orgball2608/social-media-reader/internal/vision"
	"github.com/orgball2608/social-media-reader/internal/vision/visionimpl"
	"github.com/orgball2608/social-media-reader/internal/whisper"
	"github.com/orgball2608/social-media-reader/internal/ytdlp"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Module provides a reader.Client and everything behind it. The caller supplies
// the *config.Config.
var Module = fx.Options(
	fx.Provide(
		logger.FxOption,
	),
	fx.Decorate(func(log logger.Logger) logger.Logger {
		return log.With("run_id", uuid.NewString())
	}),
	fx.Provide(
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Runner)),
		),
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			linkedinimpl.New,
			fx.As(new(linkedin.Client)),
		),
		fx.Annotate(
			visionimpl.New,
			fx.As(new(vision.Client)),
		),
		fx.Annotate(
			summarize.New,
			fx.As(new(summarize.Client)),
		),
	),
	videoModule,
	fx.Provide(
		fx.Annotate(
			readerimpl.New,
			fx.As(new(reader.Client)),
		),
	),
)

var videoModule = fx.Options(
	fx.Provide(
		fx.Annotate(
			ytdlp.New,
			fx.As(new(video.Downloader)),
		),
		fx.Annotate(
			ffmpeg.New,
			fx.As(new(video.MediaProcessor)),
		),
		fx.Annotate(
			whisper.New,
			fx.As(new(video.Transcriber)),
			fx.ResultTags(`name:"local"`),
		),
		fx.Annotate(
			remoteTranscriber,
			fx.ResultTags(`name:"remote"`),
		),
		fx.Annotate(
			videoimpl.New,
			fx.As(new(video.Client)),
		),
	),
)

// remoteTranscriber exposes the vision model's audio endpoint when a key is set.
func remoteTranscriber(v vision.Client) video.Transcriber {
	if !v.Enabled() {
		return nil
	}
	return v
}

// EventLogger routes fx lifecycle events through the application logger when
// debug is set and discards them otherwise.
func EventLogger(debug bool) fx.Option {
	if !debug {
		return fx.NopLogger
	}
	return fx.WithLogger(func(log logger.Logger) fxevent.Logger {
		if s, ok := log.(interface{ Slog() *slog.Logger }); ok {
			return &fxevent.SlogLogger{Logger: s.Slog()}
		}
		return &fxevent.ConsoleLogger{W: os.Stderr}
	})
}
