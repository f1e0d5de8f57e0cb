package app

import (
	"testing"

	"github.com/orgball2608/social-media-reader/internal/reader"
	"github.com/orgball2608/social-media-reader/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.LogLevel = "error"
	cfg.Video.YtDlpBin = "yt-dlp"
	cfg.Video.FFmpegBin = "ffmpeg"
	cfg.Video.FFprobeBin = "ffprobe"
	cfg.Video.WhisperBin = "whisper"
	cfg.Vision.MaxAttempts = 3
	return cfg
}

func TestModuleValidates(t *testing.T) {
	var r reader.Client
	err := fx.ValidateApp(fx.Supply(testConfig()), Module, fx.Populate(&r))
	require.NoError(t, err)
}

func TestModuleProvidesReader(t *testing.T) {
	for _, key := range []string{"", "test-key"} {
		cfg := testConfig()
		cfg.Vision.APIKey = key

		var r reader.Client
		app := fxtest.New(t, fx.Supply(cfg), Module, fx.Populate(&r))
		app.RequireStart()
		assert.NotNil(t, r)
		app.RequireStop()
	}
}
