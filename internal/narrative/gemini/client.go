// Package gemini implements narrative.Provider on the Google GenAI API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"offr-backend/internal/narrative"
	"offr-backend/internal/shared/telemetry"
)

const defaultModel = "gemini-2.5-flash"

// Client wraps the Google GenAI client for JSON-mode prompts.
type Client struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewClient constructs a Gemini-backed provider.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 25 * time.Second
	}

	return &Client{client: client, modelName: model, timeout: timeout}, nil
}

// GenerateJSON sends the prompt in JSON output mode and returns the
// recovered JSON object. All failures surface as narrative.ProviderError.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	if c == nil || c.client == nil {
		return nil, narrative.NewProviderError(narrative.CodeUnavailable, "gemini client is not initialized", nil)
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, narrative.NewProviderError(narrative.CodeInternal, "prompt must not be empty", nil)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.3),
		ResponseMIMEType: "application/json",
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(callCtx, c.modelName, genai.Text(prompt), cfg)
	elapsed := time.Since(start)
	if err != nil {
		pe := classify(err)
		telemetry.Warn("gemini.call_failed", map[string]any{
			"model":      c.modelName,
			"code":       pe.Code,
			"latency_ms": elapsed.Milliseconds(),
			"error":      err.Error(),
		})
		return nil, pe
	}

	text := collectText(resp)
	if text == "" {
		return nil, narrative.NewProviderError(narrative.CodeParse, "gemini returned an empty response", nil)
	}

	raw, err := narrative.ParseJSONObject(text)
	if err != nil {
		telemetry.Warn("gemini.parse_failed", map[string]any{
			"model":      c.modelName,
			"latency_ms": elapsed.Milliseconds(),
		})
		return nil, err
	}

	telemetry.Info("gemini.call_ok", map[string]any{
		"model":      c.modelName,
		"latency_ms": elapsed.Milliseconds(),
	})
	return raw, nil
}

// Model reports the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

// classify maps transport errors onto the provider error taxonomy.
func classify(err error) *narrative.ProviderError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return narrative.NewProviderError(narrative.CodeTimeout, "AI provider timed out. Please try again.", err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return narrative.NewProviderError(narrative.CodeRateLimit, "AI provider rate limit reached. Try again shortly.", err)
		case apiErr.Code == http.StatusServiceUnavailable || apiErr.Code == http.StatusGatewayTimeout:
			return narrative.NewProviderError(narrative.CodeTimeout, "AI provider is temporarily unavailable. Please try again.", err)
		}
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "timeout") || strings.Contains(s, "timed out") || strings.Contains(s, "deadline"):
		return narrative.NewProviderError(narrative.CodeTimeout, "AI provider timed out. Please try again.", err)
	case strings.Contains(s, "429") || strings.Contains(s, "quota") || strings.Contains(s, "rate"):
		return narrative.NewProviderError(narrative.CodeRateLimit, "AI provider rate limit reached. Try again shortly.", err)
	case strings.Contains(s, "503") || strings.Contains(s, "unavailable") || strings.Contains(s, "overloaded"):
		return narrative.NewProviderError(narrative.CodeTimeout, "AI provider is temporarily unavailable. Please try again.", err)
	}
	return narrative.NewProviderError(narrative.CodeInternal, "AI provider error.", err)
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}
