package faq

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"offr-backend/internal/narrative"
	"offr-backend/internal/shared/metrics"
	"offr-backend/internal/shared/telemetry"
)

const maxQuestionLen = 500

// Answer is the assistant's reply. Fallback is set when the static answer
// was served instead of a generated one.
type Answer struct {
	Answer            string   `json:"answer"`
	FollowUpQuestions []string `json:"follow_up_questions"`
	Fallback          bool     `json:"_fallback,omitempty"`
}

// Service answers UCAS and product questions through the narrative provider,
// with a static fallback so the endpoint never errors on provider failure.
type Service struct {
	provider narrative.Provider
}

// NewService builds a FAQ service.
func NewService(provider narrative.Provider) *Service {
	if provider == nil {
		provider = narrative.Placeholder{}
	}
	return &Service{provider: provider}
}

// Ask answers a student question. The question is trimmed and hard-capped
// before it reaches the provider.
func (s *Service) Ask(ctx context.Context, question string) Answer {
	question = strings.TrimSpace(question)
	if len(question) > maxQuestionLen {
		question = question[:maxQuestionLen]
	}

	start := time.Now()
	raw, err := s.provider.GenerateJSON(ctx, narrative.FAQPrompt(question))
	metrics.RecordAICall("faq", outcomeFor(err), time.Since(start))
	if err != nil {
		if narrative.CodeOf(err) != narrative.CodeUnavailable {
			telemetry.Warn("faq.fallback", map[string]any{"code": narrative.CodeOf(err)})
		}
		return fallbackAnswer()
	}

	var decoded struct {
		Answer            string   `json:"answer"`
		FollowUpQuestions []string `json:"follow_up_questions"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fallbackAnswer()
	}

	if decoded.Answer == "" {
		decoded.Answer = "I could not generate an answer. Please try rephrasing your question."
	}
	if decoded.FollowUpQuestions == nil {
		decoded.FollowUpQuestions = []string{}
	}
	return Answer{Answer: decoded.Answer, FollowUpQuestions: decoded.FollowUpQuestions}
}

func fallbackAnswer() Answer {
	return Answer{
		Answer:            "AI assistant is not available right now. Please browse the FAQ above or check the UCAS website for detailed guidance.",
		FollowUpQuestions: []string{},
		Fallback:          true,
	}
}

func outcomeFor(err error) string {
	if err == nil {
		return "ok"
	}
	return narrative.CodeOf(err)
}
