// Package narrative abstracts the AI text provider used for counsellor
// notes, personal-statement feedback, FAQ answers and profile suggestions.
// The scoring engine never imports this package; enrichment failures must
// never affect a deterministic assessment.
package narrative

import (
	"context"
	"encoding/json"
)

// Provider generates a JSON document from a prompt.
type Provider interface {
	GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error)
}

// Placeholder is the provider used when no AI backend is configured. Every
// call fails with AI_UNAVAILABLE so callers fall back deterministically.
type Placeholder struct{}

// GenerateJSON always reports the provider as unavailable.
func (Placeholder) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	_ = ctx
	_ = prompt
	return nil, NewProviderError(CodeUnavailable, "no AI provider configured", nil)
}
