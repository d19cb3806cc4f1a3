package narrative

import (
	"errors"
	"fmt"
)

// Error codes for provider failures. Retryable codes are transient and may
// succeed on a second attempt; the rest are permanent for a given input.
const (
	CodeUnavailable = "AI_UNAVAILABLE"
	CodeTimeout     = "PROVIDER_TIMEOUT"
	CodeRateLimit   = "PROVIDER_RATE_LIMIT"
	CodeParse       = "PARSE_ERROR"
	CodeInternal    = "INTERNAL_ERROR"
)

// ProviderError is the typed failure surface of a narrative provider.
type ProviderError struct {
	Code      string
	Message   string
	Retryable bool
	Err       error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError builds a ProviderError. Everything except an unconfigured
// provider is worth the caller retrying eventually; whether a call is
// retried automatically is the retry wrapper's narrower decision.
func NewProviderError(code, message string, err error) *ProviderError {
	return &ProviderError{
		Code:      code,
		Message:   message,
		Retryable: code != CodeUnavailable,
		Err:       err,
	}
}

// IsRetryable reports whether err is a provider failure a client may retry.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// CodeOf extracts the provider error code, or CodeInternal for foreign errors.
func CodeOf(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeInternal
}

// HTTPStatusFor maps a provider error code to the status the API surfaces
// when an AI-only endpoint fails outright.
func HTTPStatusFor(code string) int {
	switch code {
	case CodeUnavailable, CodeTimeout:
		return 503
	case CodeRateLimit:
		return 429
	case CodeParse:
		return 502
	default:
		return 502
	}
}
