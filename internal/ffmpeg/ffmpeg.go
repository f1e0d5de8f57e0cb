// Package ffmpeg extracts frames and audio and probes durations.
package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/floostack/transcoder/ffmpeg"
	"github.com/orgball2608/social-media-reader/internal/command"
	"github.com/orgball2608/social-media-reader/internal/video"
	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
)

const (
	framePattern = "frame_%04d.jpg"
	audioFile    = "audio.wav"
)

// ProbeFunc returns the duration reported by ffprobe as text, in seconds.
type ProbeFunc func(path string) (string, error)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Runner command.Runner
}

type Impl struct {
	ffmpegBin string
	probe     ProbeFunc
	runner    command.Runner
	logger    logger.Logger
}

func New(opts Opts) *Impl {
	return &Impl{
		ffmpegBin: opts.Config.Video.FFmpegBin,
		probe:     transcoderProbe(opts.Config.Video.FFmpegBin, opts.Config.Video.FFprobeBin),
		runner:    opts.Runner,
		logger:    opts.Logger.WithComponent("ffmpeg"),
	}
}

var _ video.MediaProcessor = (*Impl)(nil)

func transcoderProbe(ffmpegBin, ffprobeBin string) ProbeFunc {
	return func(path string) (string, error) {
		cfg := &ffmpeg.Config{
			FfmpegBinPath:  ffmpegBin,
			FfprobeBinPath: ffprobeBin,
		}
		metadata, err := ffmpeg.New(cfg).Input(path).GetMetadata()
		if err != nil {
			return "", fmt.Errorf("failed to extract file metadata information using ffprobe: %w", err)
		}
		return metadata.GetFormat().GetDuration(), nil
	}
}

func (f *Impl) Duration(_ context.Context, path string) (float64, error) {
	raw, err := f.probe(path)
	if err != nil {
		return 0, err
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration %q: %w", raw, err)
	}
	return d, nil
}

func (f *Impl) ExtractFrames(ctx context.Context, path, dir string, interval time.Duration, maxFrames int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.Wrap(err, "create frame directory")
	}

	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", path,
		"-vf", "fps=1/" + strconv.FormatFloat(interval.Seconds(), 'f', -1, 64),
		"-frames:v", strconv.Itoa(maxFrames),
		"-q:v", "2",
		filepath.Join(dir, framePattern),
	}
	if _, err := f.runner.Run(ctx, f.ffmpegBin, args...); err != nil {
		return nil, apperrors.Wrap(err, "ffmpeg frame extraction failed")
	}

	frames, err := filepath.Glob(filepath.Join(dir, "frame_*.jpg"))
	if err != nil {
		return nil, apperrors.Wrap(err, "list frames")
	}
	sort.Strings(frames)

	f.logger.Debug("Extracted frames", "count", len(frames), "interval", interval.String())
	return frames, nil
}

func (f *Impl) ExtractAudio(ctx context.Context, path, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Wrap(err, "create audio directory")
	}

	out := filepath.Join(dir, audioFile)
	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", path,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		out,
	}
	if _, err := f.runner.Run(ctx, f.ffmpegBin, args...); err != nil {
		return "", apperrors.Wrap(err, "audio extraction failed")
	}
	return out, nil
}
