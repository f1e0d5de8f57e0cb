package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orgball2608/social-media-reader/internal/command"
	mock_command "github.com/orgball2608/social-media-reader/internal/command/mocks"
	"github.com/orgball2608/social-media-reader/pkg/config"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestImpl(t *testing.T) (*Impl, *mock_command.MockRunner) {
	runner := mock_command.NewMockRunner(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.Video.FFmpegBin = "ffmpeg"
	cfg.Video.FFprobeBin = "ffprobe"

	return New(Opts{Config: cfg, Logger: logger.Nop(), Runner: runner}), runner
}

func TestExtractFrames(t *testing.T) {
	f, runner := newTestImpl(t)
	dir := filepath.Join(t.TempDir(), "frames")

	runner.EXPECT().
		Run(gomock.Any(), "ffmpeg",
			"-y", "-hide_banner", "-loglevel", "error",
			"-i", "/work/video.mp4",
			"-vf", "fps=1/30",
			"-frames:v", "20",
			"-q:v", "2",
			filepath.Join(dir, "frame_%04d.jpg"),
		).
		DoAndReturn(func(_ context.Context, _ string, _ ...string) (*command.Output, error) {
			for _, name := range []string{"frame_0002.jpg", "frame_0001.jpg", "frame_0003.jpg"} {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("jpg"), 0o600))
			}
			return &command.Output{}, nil
		})

	frames, err := f.ExtractFrames(context.Background(), "/work/video.mp4", dir, 30*time.Second, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "frame_0001.jpg"),
		filepath.Join(dir, "frame_0002.jpg"),
		filepath.Join(dir, "frame_0003.jpg"),
	}, frames)
}

func TestExtractFramesFractionalInterval(t *testing.T) {
	f, runner := newTestImpl(t)
	dir := t.TempDir()

	runner.EXPECT().
		Run(gomock.Any(), "ffmpeg", "-y", "-hide_banner", "-loglevel", "error", "-i", "v.mp4",
			"-vf", "fps=1/6.25", "-frames:v", "20", "-q:v", "2", filepath.Join(dir, "frame_%04d.jpg")).
		Return(&command.Output{}, nil)

	frames, err := f.ExtractFrames(context.Background(), "v.mp4", dir, 6250*time.Millisecond, 20)
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestExtractAudio(t *testing.T) {
	f, runner := newTestImpl(t)
	dir := t.TempDir()
	want := filepath.Join(dir, "audio.wav")

	runner.EXPECT().
		Run(gomock.Any(), "ffmpeg", "-y", "-hide_banner", "-loglevel", "error", "-i", "v.mp4",
			"-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", want).
		Return(&command.Output{}, nil)

	got, err := f.ExtractAudio(context.Background(), "v.mp4", dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExtractAudioFailure(t *testing.T) {
	f, runner := newTestImpl(t)

	runner.EXPECT().Run(gomock.Any(), "ffmpeg", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...string) (*command.Output, error) {
			return nil, &command.ExitError{Name: "ffmpeg", ExitCode: 1, Stderr: "Output file #0 does not contain any stream"}
		})

	_, err := f.ExtractAudio(context.Background(), "v.mp4", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not contain any stream")
}

func TestDuration(t *testing.T) {
	f, _ := newTestImpl(t)

	f.probe = func(string) (string, error) { return "600.120000\n", nil }
	d, err := f.Duration(context.Background(), "v.mp4")
	require.NoError(t, err)
	assert.InDelta(t, 600.12, d, 0.0001)

	f.probe = func(string) (string, error) { return "N/A", nil }
	_, err = f.Duration(context.Background(), "v.mp4")
	assert.Error(t, err)

	f.probe = func(string) (string, error) { return "", errors.New("no ffprobe") }
	_, err = f.Duration(context.Background(), "v.mp4")
	assert.Error(t, err)
}
