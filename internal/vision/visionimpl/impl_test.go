package visionimpl

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func newTestVision(baseURL, key string) *VisionImpl {
	cfg := &config.Config{}
	cfg.Vision.APIKey = key
	cfg.Vision.BaseURL = baseURL
	cfg.Vision.Model = "test-model"
	cfg.Vision.Timeout = 5 * time.Second
	cfg.Vision.MaxAttempts = 3
	cfg.Vision.BaseDelay = time.Millisecond
	cfg.Vision.MaxDelay = 2 * time.Millisecond
	cfg.Vision.MaxImages = 2

	return New(Opts{Config: cfg, Logger: logger.Nop()})
}

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame_0001.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))
	return path
}

func readBody(t *testing.T, r *http.Request) string {
	t.Helper()
	b, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	return string(b)
}

func okResponse(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`))
}

func TestAnalyzeImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		body := readBody(t, r)
		assert.Contains(t, body, `"text":"what is this?"`)
		assert.Contains(t, body, `"mimeType":"image/png"`)
		assert.Equal(t, 1, strings.Count(body, `"inlineData"`))

		okResponse(w, "a cat")
	}))
	defer srv.Close()

	v := newTestVision(srv.URL, "secret")
	assert.True(t, v.Enabled())

	text, err := v.AnalyzeImage(context.Background(), writeImage(t), "what is this?")
	require.NoError(t, err)
	assert.Equal(t, "a cat", text)
}

func TestAnalyzeCarouselLimitsAndPlaceholders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := readBody(t, r)

		// one image loads, the second fails, the third is over the limit
		assert.Contains(t, body, DefaultCarouselPrompt)
		assert.Equal(t, 1, strings.Count(body, `"inlineData"`))
		assert.Contains(t, body, "[Image 2 failed to load")
		assert.NotContains(t, body, "[Image 3")

		okResponse(w, "two slides")
	}))
	defer srv.Close()

	img := writeImage(t)
	missing := filepath.Join(t.TempDir(), "missing.jpg")

	text, err := newTestVision(srv.URL, "secret").AnalyzeCarousel(context.Background(), []string{img, missing, img}, "")
	require.NoError(t, err)
	assert.Equal(t, "two slides", text)
}

func TestRateLimitExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	_, err := newTestVision(srv.URL, "secret").AnalyzeImage(context.Background(), writeImage(t), "")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeRateLimitExhausted, apperrors.GetCode(err))
	assert.Equal(t, int32(3), calls.Load())
}

func TestRateLimitRecovers(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		okResponse(w, "fine")
	}))
	defer srv.Close()

	text, err := newTestVision(srv.URL, "secret").AnalyzeImage(context.Background(), writeImage(t), "")
	require.NoError(t, err)
	assert.Equal(t, "fine", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`))
	}))
	defer srv.Close()

	_, err := newTestVision(srv.URL, "secret").AnalyzeImage(context.Background(), writeImage(t), "")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeAPIError, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "internal")
	assert.Equal(t, int32(1), calls.Load())
}

func TestEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer srv.Close()

	_, err := newTestVision(srv.URL, "secret").AnalyzeImage(context.Background(), writeImage(t), "")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeAPIError, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestDisabledWithoutKey(t *testing.T) {
	v := newTestVision("http://127.0.0.1:1", "")
	assert.False(t, v.Enabled())

	_, err := v.AnalyzeImage(context.Background(), writeImage(t), "")
	assert.Equal(t, apperrors.CodeToolUnavailable, apperrors.GetCode(err))
}

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, readBody(t, r), `"mimeType":"audio/wav"`)
		okResponse(w, "hello there")
	}))
	defer srv.Close()

	audio := filepath.Join(t.TempDir(), "audio.wav")
	require.NoError(t, os.WriteFile(audio, []byte("RIFF0000WAVE"), 0o600))

	text, err := newTestVision(srv.URL, "secret").Transcribe(context.Background(), audio)
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)
}

func TestLoadImageFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, imageUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	data, err := newTestVision(srv.URL, "secret").loadImage(context.Background(), srv.URL+"/img.jpg?stp=x")
	require.NoError(t, err)
	require.NotNil(t, data.InlineData)
	assert.Equal(t, "image/png", data.InlineData.MIMEType)
	assert.Equal(t, pngHeader, data.InlineData.Data)
}

func TestAnalyzeImageLoadFailureIsAnalysisFailure(t *testing.T) {
	var modelCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cdn/img.jpg" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		modelCalls.Add(1)
		okResponse(w, "unused")
	}))
	defer srv.Close()

	_, err := newTestVision(srv.URL, "secret").AnalyzeImage(context.Background(), srv.URL+"/cdn/img.jpg", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeAPIError, apperrors.GetCode(err))
	assert.True(t, apperrors.IsAnalysisFailure(err))
	assert.Contains(t, err.Error(), "403")
	assert.Zero(t, modelCalls.Load())
}
