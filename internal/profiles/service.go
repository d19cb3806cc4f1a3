package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"offr-backend/internal/narrative"
	"offr-backend/internal/scoring"
	"offr-backend/internal/shared/metrics"
	"offr-backend/internal/shared/telemetry"
)

// Suggestion is one profile-completion tip.
type Suggestion struct {
	Field  string `json:"field"`
	Why    string `json:"why"`
	Action string `json:"action"`
}

// Service handles profile CRUD and AI completion suggestions.
type Service struct {
	repo     Repo
	provider narrative.Provider
}

// NewService builds a profiles service.
func NewService(repo Repo, provider narrative.Provider) *Service {
	if provider == nil {
		provider = narrative.Placeholder{}
	}
	return &Service{repo: repo, provider: provider}
}

// Get returns the stored profile for a user.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	return s.repo.Get(ctx, userID)
}

// Save validates and upserts a profile.
func (s *Service) Save(ctx context.Context, profile Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, profile)
}

// Suggestions returns completion tips for a profile. The AI path is used
// when available; any failure falls back to deterministic rules, so this
// never returns a provider error.
func (s *Service) Suggestions(ctx context.Context, profile Profile) []Suggestion {
	gaps := profileGaps(profile)
	if len(gaps) == 0 {
		return fallbackSuggestions(profile)
	}

	prompt := narrative.ProfileSuggestionsPrompt(profileLabel(profile), scoreContext(profile), gaps)

	start := time.Now()
	raw, err := s.provider.GenerateJSON(ctx, prompt)
	metrics.RecordAICall("profile_suggestions", aiOutcome(err), time.Since(start))
	if err != nil {
		if narrative.CodeOf(err) != narrative.CodeUnavailable {
			telemetry.Warn("profiles.suggestions_fallback", map[string]any{"code": narrative.CodeOf(err)})
		}
		return fallbackSuggestions(profile)
	}

	var decoded struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil || len(decoded.Suggestions) == 0 {
		return fallbackSuggestions(profile)
	}
	return decoded.Suggestions
}

func profileGaps(profile Profile) []string {
	var gaps []string
	switch {
	case len(profile.Interests) == 0:
		gaps = append(gaps, "No interests set")
	case len(profile.Interests) < maxInterests:
		gaps = append(gaps, fmt.Sprintf("Only %d interest(s) set (max %d)", len(profile.Interests), maxInterests))
	}
	if !profile.HasGrades() {
		gaps = append(gaps, "No predicted grades entered")
	}
	switch {
	case !profile.HasStatement():
		gaps = append(gaps, "No personal statement added")
	case len(profile.PersonalStatement) < 500:
		gaps = append(gaps, fmt.Sprintf("PS is very short (%d chars)", len(profile.PersonalStatement)))
	}
	return gaps
}

// fallbackSuggestions mirrors the AI advice deterministically so the
// endpoint works on deployments without a provider.
func fallbackSuggestions(profile Profile) []Suggestion {
	var suggestions []Suggestion
	switch {
	case len(profile.Interests) == 0:
		suggestions = append(suggestions, Suggestion{
			Field:  "interests",
			Why:    "Interests drive Hidden Gems recommendations and alternative course suggestions across the app.",
			Action: "Add up to 3 interests in the interests section.",
		})
	case len(profile.Interests) < maxInterests:
		suggestions = append(suggestions, Suggestion{
			Field:  "interests",
			Why:    "More interests produce more personalised course recommendations.",
			Action: fmt.Sprintf("Add %d more interest(s) to maximise Hidden Gems results.", maxInterests-len(profile.Interests)),
		})
	}
	if !profile.HasGrades() {
		suggestions = append(suggestions, Suggestion{
			Field:  "grades",
			Why:    "Predicted grades are the primary input to offer chance calculations (Safe/Target/Reach).",
			Action: "Add your predicted grades - assessments cannot score you without them.",
		})
	}
	switch {
	case !profile.HasStatement():
		suggestions = append(suggestions, Suggestion{
			Field:  "ps",
			Why:    "Your personal statement unlocks line-by-line analysis and course-fit feedback.",
			Action: "Add a draft PS - even rough notes help. Analyse it on the PS page.",
		})
	case len(profile.PersonalStatement) < 500:
		suggestions = append(suggestions, Suggestion{
			Field:  "ps",
			Why:    "A short PS provides limited signal for analysis tools.",
			Action: fmt.Sprintf("Your PS is %d characters. Aim for 2,000+ for meaningful feedback.", len(profile.PersonalStatement)),
		})
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{
			Field:  "complete",
			Why:    "Your profile is well-populated - all core fields are filled.",
			Action: "Keep grades and PS updated as they change; assessment accuracy depends on current data.",
		})
	}
	return suggestions
}

func profileLabel(profile Profile) string {
	if profile.Curriculum == "" {
		return "curriculum not set"
	}
	return profile.Curriculum
}

func scoreContext(profile Profile) string {
	if profile.Curriculum == string(scoring.CurriculumIB) && profile.IB != nil {
		total := profile.IB.CorePoints
		for _, g := range profile.IB.HL {
			total += g.Grade
		}
		for _, g := range profile.IB.SL {
			total += g.Grade
		}
		if total > 0 {
			return fmt.Sprintf("Predicted IB total: %d/45.", total)
		}
	}
	if profile.ALevels != nil && len(profile.ALevels.Predicted) > 0 {
		return fmt.Sprintf("Has %d A-Level subject(s) entered.", len(profile.ALevels.Predicted))
	}
	return ""
}

func aiOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	return narrative.CodeOf(err)
}
