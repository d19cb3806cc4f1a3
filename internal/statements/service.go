package statements

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"offr-backend/internal/narrative"
	"offr-backend/internal/shared/metrics"
)

// CourseContext carries the course fields that shape a course-aware review.
type CourseContext struct {
	ID              string
	Name            string
	Faculty         string
	ExpectedSignals []string
}

// SuggestedEdit is one concrete change proposed by the reviewer.
type SuggestedEdit struct {
	Target         string  `json:"target"`
	Priority       string  `json:"priority"`
	Change         string  `json:"change"`
	ExampleRewrite *string `json:"example_rewrite_optional"`
}

// Alignment maps the statement against the course's expected signals.
type Alignment struct {
	SignalsCovered  []string `json:"signals_covered"`
	SignalsMissing  []string `json:"signals_missing"`
	CoverageNotes   []string `json:"coverage_notes"`
	ExpectedSignals []string `json:"ps_expected_signals"`
}

// Scores is the locally computed rubric total; the model never sets it.
type Scores struct {
	WeightedTotal int    `json:"weighted_total"`
	Band          string `json:"band"`
}

// Meta records provenance for a generated analysis.
type Meta struct {
	CourseID    string `json:"course_id,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
	Faculty     string `json:"faculty,omitempty"`
	Format      string `json:"format"`
	GeneratedAt string `json:"generated_at"`
	Model       string `json:"model"`
}

// CourseAnalysis is the course-aware rubric review returned inside /assess.
type CourseAnalysis struct {
	Rubric         map[string]RubricCell `json:"rubric"`
	Alignment      Alignment             `json:"alignment"`
	Strengths      []string              `json:"strengths"`
	Risks          []string              `json:"risks"`
	RedFlags       []string              `json:"red_flags"`
	WhatToDoNext   []string              `json:"what_to_do_next"`
	SuggestedEdits []SuggestedEdit       `json:"suggested_edits"`
	Scores         Scores                `json:"scores"`
	Constraints    Constraints           `json:"constraints"`
	Meta           Meta                  `json:"meta"`
}

// LineFeedback is one chunk's critique in a standalone analysis.
type LineFeedback struct {
	LineNumber int     `json:"lineNumber"`
	Line       string  `json:"line"`
	Score      int     `json:"score"`
	Verdict    string  `json:"verdict"`
	Feedback   string  `json:"feedback"`
	Suggestion *string `json:"suggestion"`
}

// StandaloneAnalysis is the line-by-line review for /statements/analyse.
type StandaloneAnalysis struct {
	OverallScore int            `json:"overallScore"`
	Band         string         `json:"band"`
	Summary      string         `json:"summary"`
	Strengths    []string       `json:"strengths"`
	Weaknesses   []string       `json:"weaknesses"`
	TopPriority  string         `json:"topPriority"`
	LineFeedback []LineFeedback `json:"lineFeedback"`
	Heuristics   Heuristics     `json:"heuristics"`
	Meta         Meta           `json:"meta"`
}

// Service runs statement analyses through the narrative provider, keeping
// all scoring arithmetic local.
type Service struct {
	provider narrative.Provider
	model    string
	now      func() time.Time
}

// NewService builds a statements service. model is recorded in Meta only.
func NewService(provider narrative.Provider, model string) *Service {
	return &Service{provider: provider, model: model, now: time.Now}
}

// AnalyseForCourse reviews a statement against a specific course. The
// weighted total and band are recomputed locally from the sanitized rubric.
func (s *Service) AnalyseForCourse(ctx context.Context, course CourseContext, in Input) (*CourseAnalysis, error) {
	constraints := ComputeConstraints(in)
	heuristics := ComputeHeuristics(in.FullText())

	constraintsJSON, _ := json.Marshal(constraints)
	heuristicsJSON, _ := json.Marshal(heuristics)

	prompt := narrative.StatementRubricPrompt(
		course.Name, course.Faculty, course.ExpectedSignals,
		constraintsJSON, heuristicsJSON, in.FullText(), in.RewriteMode,
	)

	start := time.Now()
	raw, err := s.provider.GenerateJSON(ctx, prompt)
	metrics.RecordAICall("ps_rubric", outcomeFor(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	var analysis CourseAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, narrative.NewProviderError(narrative.CodeParse, "rubric response did not match the expected shape", err)
	}

	analysis.Rubric = SanitizeRubric(analysis.Rubric)
	analysis.SuggestedEdits = sanitizeEdits(analysis.SuggestedEdits)
	analysis.Strengths = orEmpty(analysis.Strengths)
	analysis.Risks = orEmpty(analysis.Risks)
	analysis.RedFlags = orEmpty(analysis.RedFlags)
	analysis.WhatToDoNext = orEmpty(analysis.WhatToDoNext)
	analysis.Alignment.SignalsCovered = orEmpty(analysis.Alignment.SignalsCovered)
	analysis.Alignment.SignalsMissing = orEmpty(analysis.Alignment.SignalsMissing)
	analysis.Alignment.CoverageNotes = orEmpty(analysis.Alignment.CoverageNotes)
	analysis.Alignment.ExpectedSignals = course.ExpectedSignals

	total := WeightedScore(analysis.Rubric)
	analysis.Scores = Scores{WeightedTotal: total, Band: BandFor(total)}
	analysis.Constraints = constraints
	analysis.Meta = Meta{
		CourseID:    course.ID,
		CourseName:  course.Name,
		Faculty:     course.Faculty,
		Format:      in.Format,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Model:       s.model,
	}
	return &analysis, nil
}

// AnalyseStandalone reviews a statement line by line with no course context.
// lines may be empty, in which case the statement is chunked server-side.
func (s *Service) AnalyseStandalone(ctx context.Context, in Input, lines []string) (*StandaloneAnalysis, error) {
	statement := in.FullText()
	if len(lines) == 0 {
		lines = SplitChunks(statement)
	}

	heuristics := ComputeHeuristics(statement)
	heuristicsJSON, _ := json.Marshal(heuristics)

	type chunk struct {
		Index int    `json:"index"`
		Text  string `json:"text"`
	}
	chunks := make([]chunk, 0, len(lines))
	for i, line := range lines {
		chunks = append(chunks, chunk{Index: i, Text: line})
	}
	linesJSON, _ := json.Marshal(chunks)

	prompt := narrative.StandaloneStatementPrompt(in.Format, statement, len(lines), linesJSON, heuristicsJSON)

	start := time.Now()
	raw, err := s.provider.GenerateJSON(ctx, prompt)
	metrics.RecordAICall("ps_standalone", outcomeFor(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	var analysis StandaloneAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, narrative.NewProviderError(narrative.CodeParse, "analysis response did not match the expected shape", err)
	}

	if analysis.OverallScore < 0 {
		analysis.OverallScore = 0
	}
	if analysis.OverallScore > 100 {
		analysis.OverallScore = 100
	}
	analysis.Strengths = orEmpty(analysis.Strengths)
	analysis.Weaknesses = orEmpty(analysis.Weaknesses)
	if analysis.LineFeedback == nil {
		analysis.LineFeedback = []LineFeedback{}
	}
	analysis.Heuristics = heuristics
	analysis.Meta = Meta{
		Format:      in.Format,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Model:       s.model,
	}
	return &analysis, nil
}

var sentenceSplitRe = regexp.MustCompile(`(?m)[.!?]\s+|\n+`)

// SplitChunks breaks a statement into sentence-sized chunks for
// line-by-line feedback.
func SplitChunks(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	chunks := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
	}
	return chunks
}

func sanitizeEdits(edits []SuggestedEdit) []SuggestedEdit {
	clean := make([]SuggestedEdit, 0, len(edits))
	for _, edit := range edits {
		target := strings.ToUpper(strings.TrimSpace(edit.Target))
		switch target {
		case "Q1", "Q2", "Q3", "GLOBAL":
		default:
			target = "GLOBAL"
		}
		priority := strings.ToLower(strings.TrimSpace(edit.Priority))
		switch priority {
		case "high", "med", "low":
		default:
			priority = "med"
		}
		clean = append(clean, SuggestedEdit{
			Target:         target,
			Priority:       priority,
			Change:         edit.Change,
			ExampleRewrite: edit.ExampleRewrite,
		})
	}
	return clean
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func outcomeFor(err error) string {
	if err == nil {
		return "ok"
	}
	return narrative.CodeOf(err)
}
