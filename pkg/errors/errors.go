package errors

import (
	"errors"
	"fmt"
)

// Failure codes surfaced by extractors and the vision analyzer.
const (
	CodeDetectionMiss      = "detection_miss"
	CodeAuthRequired       = "auth_required"
	CodeStructureNotFound  = "structure_not_found"
	CodeDownloadFailed     = "download_failed"
	CodeRateLimited        = "rate_limited"
	CodeRateLimitExhausted = "rate_limit_exhausted"
	CodeAPIError           = "api_error"
	CodeToolUnavailable    = "tool_unavailable"
	CodeInvalidInput       = "invalid_input"
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewWithCode creates a coded error without an underlying cause.
func NewWithCode(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetCode returns the first non-empty code found in the error chain.
func GetCode(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.Code != "" {
			return e.Code
		}
		err = e.Err
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	return err != nil && GetCode(err) == code
}

// IsExtractionFailure reports whether err came from an extractor.
func IsExtractionFailure(err error) bool {
	switch GetCode(err) {
	case CodeAuthRequired, CodeStructureNotFound, CodeDownloadFailed, CodeRateLimited:
		return true
	}
	return false
}

// IsAnalysisFailure reports whether err came from the vision analyzer.
func IsAnalysisFailure(err error) bool {
	switch GetCode(err) {
	case CodeRateLimitExhausted, CodeAPIError:
		return true
	}
	return false
}

// Remedy returns a suggested next step for a failure, or "" when there is none.
func Remedy(err error) string {
	switch GetCode(err) {
	case CodeAuthRequired:
		return "this content needs a login; copy the post text and run again with --paste"
	case CodeStructureNotFound:
		return "the page layout was not recognised; retry with --summarize or paste the text with --paste"
	case CodeDownloadFailed:
		return "the video could not be fetched; export browser cookies and set YTDLP_COOKIES, or download it yourself and use --video-file"
	case CodeDetectionMiss:
		return "unsupported URL; try --summarize for a generic text extraction"
	case CodeRateLimited, CodeRateLimitExhausted:
		return "the remote service is rate limiting requests; wait a minute and try again"
	case CodeToolUnavailable:
		return "install the missing tool and make sure it is on PATH"
	}
	return ""
}
