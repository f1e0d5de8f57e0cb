package errors_test

import (
	"fmt"
	"testing"

	"github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetCodeFindsInnermostCode(t *testing.T) {
	inner := errors.WrapWithCode(fmt.Errorf("HTTP 404"), errors.CodeAuthRequired, "oembed lookup failed")
	outer := errors.Wrap(inner, "linkedin extraction")

	assert.Equal(t, errors.CodeAuthRequired, errors.GetCode(outer))
	assert.True(t, errors.IsExtractionFailure(outer))
	assert.False(t, errors.IsAnalysisFailure(outer))
	assert.Contains(t, outer.Error(), "HTTP 404")
}

func TestGetCodeThroughStdlibWrapping(t *testing.T) {
	err := fmt.Errorf("processing: %w", errors.NewWithCode(errors.CodeRateLimitExhausted, "gave up"))

	assert.Equal(t, errors.CodeRateLimitExhausted, errors.GetCode(err))
	assert.True(t, errors.IsAnalysisFailure(err))
}

func TestRemedy(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{errors.CodeAuthRequired, "--paste"},
		{errors.CodeStructureNotFound, "--summarize"},
		{errors.CodeDownloadFailed, "YTDLP_COOKIES"},
		{errors.CodeDetectionMiss, "--summarize"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Contains(t, errors.Remedy(errors.NewWithCode(tt.code, "x")), tt.want)
		})
	}

	assert.Empty(t, errors.Remedy(fmt.Errorf("plain")))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeAPIError, "nothing"))
}

func TestGetMessage(t *testing.T) {
	err := errors.WrapWithCode(fmt.Errorf("exit status 1"), errors.CodeDownloadFailed, "yt-dlp download failed")

	assert.Equal(t, "yt-dlp download failed", errors.GetMessage(err))
	assert.Equal(t, "plain", errors.GetMessage(fmt.Errorf("plain")))
	assert.Equal(t, "", errors.GetMessage(nil))
}
