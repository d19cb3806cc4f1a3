package narrative

import (
	"context"
	"encoding/json"
	"time"

	"offr-backend/internal/shared/telemetry"
)

// retryingProvider wraps a Provider with bounded retries for transient
// transport failures. Parse errors are never retried here: the model
// already answered, just badly. An unconfigured provider fails fast.
type retryingProvider struct {
	inner       Provider
	maxRetries  int
	baseBackoff time.Duration
	sleep       func(context.Context, time.Duration) error
}

// WithRetry wraps a provider with up to maxRetries extra attempts and
// exponential backoff between them.
func WithRetry(inner Provider, maxRetries int, baseBackoff time.Duration) Provider {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseBackoff <= 0 {
		baseBackoff = 2 * time.Second
	}
	return &retryingProvider{
		inner:       inner,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
		sleep:       sleepCtx,
	}
}

func (r *retryingProvider) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	backoff := r.baseBackoff
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		raw, err := r.inner.GenerateJSON(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !shouldRetry(err) || attempt == r.maxRetries {
			return nil, err
		}
		telemetry.Warn("ai.retry", map[string]any{
			"attempt":    attempt + 1,
			"code":       CodeOf(err),
			"backoff_ms": backoff.Milliseconds(),
		})
		if err := r.sleep(ctx, backoff); err != nil {
			return nil, NewProviderError(CodeTimeout, "request cancelled while waiting to retry", err)
		}
		backoff *= 2
	}
	return nil, lastErr
}

func shouldRetry(err error) bool {
	switch CodeOf(err) {
	case CodeTimeout, CodeRateLimit, CodeInternal:
		return true
	default:
		return false
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
