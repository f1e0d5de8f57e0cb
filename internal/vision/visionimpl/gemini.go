package visionimpl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/retry"
	"google.golang.org/genai"
)

// generate sends parts to the model's generateContent method. Rate limiting is
// retried with backoff; every other failure returns at once.
func (v *VisionImpl) generate(ctx context.Context, model string, parts []*genai.Part) (string, error) {
	if !v.Enabled() {
		return "", apperrors.NewWithCode(apperrors.CodeToolUnavailable, "vision analysis disabled: GEMINI_API_KEY is not set")
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var text string
	attempt := 0
	op := func() error {
		attempt++
		v.logger.Debug("Calling vision model", "model", model, "attempt", attempt, "parts", len(parts))

		t, err := v.call(ctx, model, contents)
		if err != nil {
			return err
		}
		text = t
		return nil
	}

	err := retry.Do(ctx, v.logger, "gemini generateContent", op, v.retry)
	if err == nil {
		return text, nil
	}
	if apperrors.HasCode(err, apperrors.CodeRateLimited) {
		return "", apperrors.WrapWithCode(err, apperrors.CodeRateLimitExhausted,
			fmt.Sprintf("vision model still rate limited after %d attempts", attempt))
	}
	if apperrors.GetCode(err) == "" {
		return "", apperrors.WrapWithCode(err, apperrors.CodeAPIError, "vision request failed")
	}
	return "", err
}

// call performs one request. Errors other than rate limiting are marked permanent.
func (v *VisionImpl) call(ctx context.Context, model string, contents []*genai.Content) (string, error) {
	resp, err := v.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return "", apperrors.WrapWithCode(err, apperrors.CodeRateLimited, "vision model rate limited")
		}
		return "", retry.Permanent(apperrors.WrapWithCode(err, apperrors.CodeAPIError, "vision model returned an error"))
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		var reason string
		if resp.PromptFeedback != nil {
			reason = string(resp.PromptFeedback.BlockReason)
		}
		if reason == "" && len(resp.Candidates) > 0 {
			reason = string(resp.Candidates[0].FinishReason)
		}
		return "", retry.Permanent(apperrors.NewWithCode(apperrors.CodeAPIError, "vision model returned no text "+reasonSuffix(reason)))
	}
	return text, nil
}

func reasonSuffix(reason string) string {
	if reason == "" {
		return "(empty response)"
	}
	return "(" + reason + ")"
}
