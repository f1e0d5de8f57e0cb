package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	homedir.DisableCache = true
	t.Setenv("HOME", dir)
	t.Setenv(EnvConfigPath, "")
	t.Setenv("GEMINI_API_KEY", "")

	saved := OpenClawPaths
	OpenClawPaths = []string{filepath.Join(dir, "openclaw.json")}
	t.Cleanup(func() { OpenClawPaths = saved })

	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "curl/7.0", cfg.Instagram.UserAgent)
	assert.Equal(t, 60, cfg.LinkedIn.AuthorMaxLen)
	assert.Equal(t, 150, cfg.LinkedIn.HeadlineMaxLen)
	assert.Equal(t, 5*time.Second, cfg.Video.FrameInterval)
	assert.Equal(t, 20, cfg.Video.MaxFrames)
	assert.Equal(t, 8, cfg.Video.AnalyzeFrames)
	assert.Equal(t, uint64(3), cfg.Vision.MaxAttempts)
	assert.Equal(t, "v1beta", cfg.Vision.APIVersion)
	assert.Equal(t, 10, cfg.Vision.MaxImages)
	assert.Empty(t, cfg.Vision.APIKey)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "smr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[video]
max_frames = 12
ytdlp_bin = "/opt/yt-dlp"

[vision]
model = "gemini-file"
`), 0o600))

	t.Setenv("GEMINI_MODEL", "gemini-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Video.MaxFrames)
	assert.Equal(t, "/opt/yt-dlp", cfg.Video.YtDlpBin)
	assert.Equal(t, "gemini-env", cfg.Vision.Model)
	assert.Equal(t, 5*time.Second, cfg.Video.FrameInterval)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("VIDEO_MAX_FRAMES", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxFrames")
}

func TestLoadOpenClawKey(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "openclaw.json"),
		[]byte(`{"models":{"providers":{"gemini":{"apiKey":"from-openclaw"}}}}`),
		0o600,
	))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-openclaw", cfg.Vision.APIKey)

	t.Setenv("GEMINI_API_KEY", "from-env")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Vision.APIKey)
}

func TestDescriptionListsVariables(t *testing.T) {
	desc, err := Description()
	require.NoError(t, err)

	assert.Contains(t, desc, "GEMINI_API_KEY")
	assert.Contains(t, desc, "YTDLP_COOKIES")
}
