package ytdlp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orgball2608/social-media-reader/internal/command"
	mock_command "github.com/orgball2608/social-media-reader/internal/command/mocks"
	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClient(t *testing.T, cookies string) (*Client, *mock_command.MockRunner) {
	ctrl := gomock.NewController(t)
	runner := mock_command.NewMockRunner(ctrl)

	cfg := &config.Config{}
	cfg.Video.YtDlpBin = "yt-dlp"
	cfg.Video.Format = "best[filesize<100M]/best"
	cfg.Video.Cookies = cookies

	return New(Opts{Config: cfg, Logger: logger.Nop(), Runner: runner}), runner
}

const sampleInfo = `{
  "extractor": "youtube",
  "title": "Launch day",
  "description": "We shipped #golang tooling",
  "uploader": "Acme",
  "uploader_url": "https://www.youtube.com/@acme",
  "duration": 600,
  "duration_string": "10:00",
  "view_count": 1234567,
  "like_count": 890,
  "upload_date": "20250101",
  "webpage_url": "https://www.youtube.com/watch?v=abc",
  "thumbnail": "https://i.ytimg.com/vi/abc/maxresdefault.jpg",
  "thumbnails": [{"url": "https://i.ytimg.com/vi/abc/default.jpg"}, {"id": "x"}, {"url": "https://i.ytimg.com/vi/abc/hq.jpg"}]
}`

func TestMetadata(t *testing.T) {
	c, runner := newTestClient(t, "")
	const url = "https://www.youtube.com/watch?v=abc"

	runner.EXPECT().
		Run(gomock.Any(), "yt-dlp", "--no-warnings", "--no-playlist", "--dump-single-json", "--skip-download", url).
		Return(&command.Output{Stdout: []byte(sampleInfo)}, nil)

	meta, err := c.Metadata(context.Background(), url)
	require.NoError(t, err)

	assert.Equal(t, "youtube", meta.Extractor)
	assert.Equal(t, "Launch day", meta.Title)
	assert.Equal(t, 600.0, meta.Duration)
	assert.Equal(t, int64(1234567), meta.ViewCount)
	assert.Equal(t, []string{"https://i.ytimg.com/vi/abc/default.jpg", "https://i.ytimg.com/vi/abc/hq.jpg"}, meta.Thumbnails)
	assert.Equal(t, "https://i.ytimg.com/vi/abc/maxresdefault.jpg", meta.BestThumbnail())
}

func TestMetadataTruncatesDescription(t *testing.T) {
	c, runner := newTestClient(t, "")

	long := strings.Repeat("é", 1500)
	runner.EXPECT().Run(gomock.Any(), "yt-dlp", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...string) (*command.Output, error) {
			return &command.Output{Stdout: []byte(`{"description":"` + long + `"}`)}, nil
		}).AnyTimes()

	meta, err := c.Metadata(context.Background(), "https://youtu.be/abc")
	require.NoError(t, err)
	assert.Equal(t, 1000, len([]rune(meta.Description)))
}

func TestMetadataDownloadFailedKeepsDiagnostic(t *testing.T) {
	c, runner := newTestClient(t, "/tmp/cookies.txt")
	const url = "https://www.tiktok.com/@u/video/1"

	runner.EXPECT().
		Run(gomock.Any(), "yt-dlp", "--no-warnings", "--no-playlist", "--cookies", "/tmp/cookies.txt", "--dump-single-json", "--skip-download", url).
		Return(nil, &command.ExitError{Name: "yt-dlp", ExitCode: 1, Stderr: "ERROR: This video is not available in your country"})

	_, err := c.Metadata(context.Background(), url)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDownloadFailed, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "not available in your country")
}

func TestMetadataToolMissing(t *testing.T) {
	c, runner := newTestClient(t, "")

	runner.EXPECT().Run(gomock.Any(), "yt-dlp", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewWithCode(apperrors.CodeToolUnavailable, "yt-dlp is not installed"))

	_, err := c.Metadata(context.Background(), "https://youtu.be/abc")
	assert.Equal(t, apperrors.CodeToolUnavailable, apperrors.GetCode(err))
}

func TestDownloadUsesPrintedPath(t *testing.T) {
	c, runner := newTestClient(t, "")
	dir := t.TempDir()
	const url = "https://youtu.be/abc"

	runner.EXPECT().
		Run(gomock.Any(), "yt-dlp",
			"--no-warnings", "--no-playlist", "--no-progress",
			"-f", "best[filesize<100M]/best",
			"-o", filepath.Join(dir, "%(title).50s.%(ext)s"),
			"--print", "after_move:filepath",
			url,
		).
		Return(&command.Output{Stdout: []byte("[info] done\n" + filepath.Join(dir, "Launch day.mp4") + "\n")}, nil)

	path, err := c.Download(context.Background(), url, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Launch day.mp4"), path)
}

func TestDownloadFallsBackToDirectoryScan(t *testing.T) {
	c, runner := newTestClient(t, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.mp4"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.mp4.part"), []byte("x"), 0o600))

	runner.EXPECT().Run(gomock.Any(), "yt-dlp", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...string) (*command.Output, error) {
			return &command.Output{}, nil
		}).AnyTimes()

	path, err := c.Download(context.Background(), "https://youtu.be/abc", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "clip.mp4"), path)
}
