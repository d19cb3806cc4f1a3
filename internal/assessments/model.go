package assessments

import (
	"offr-backend/internal/scoring"
	"offr-backend/internal/statements"
)

// Request is the POST /assess payload.
type Request struct {
	CourseID   string                `json:"course_id"`
	HomeOrIntl string                `json:"home_or_intl"`
	Curriculum string                `json:"curriculum"`
	IB         *scoring.IBGrades     `json:"ib,omitempty"`
	ALevels    *scoring.ALevelGrades `json:"a_levels,omitempty"`
	PS         *PSInput              `json:"ps,omitempty"`
}

// PSInput is the optional personal statement attached to an assessment.
type PSInput struct {
	Format    string `json:"format"`
	Q1        string `json:"q1"`
	Q2        string `json:"q2"`
	Q3        string `json:"q3"`
	Statement string `json:"statement"`
}

// CourseSummary is the course block echoed back in the response.
type CourseSummary struct {
	ID           string `json:"id"`
	UniversityID string `json:"university_id"`
	Name         string `json:"name"`
	Faculty      string `json:"faculty"`
	TypicalOffer string `json:"typical_offer"`
}

// Competitiveness carries the deterministic scoring numbers.
type Competitiveness struct {
	ThresholdUsed int `json:"threshold_used"`
	Margin        int `json:"margin"`
	Score         int `json:"score"`
}

// Counsellor is the narrative advice block. The lists start from
// deterministic defaults and may be polished by the AI provider.
type Counsellor struct {
	Strengths    []string `json:"strengths"`
	Risks        []string `json:"risks"`
	WhatToDoNext []string `json:"what_to_do_next"`
	Notes        []string `json:"notes"`
}

// Alternative is one suggested same-faculty course with a lower bar.
type Alternative struct {
	ID           string `json:"id"`
	UniversityID string `json:"university_id"`
	Name         string `json:"name"`
	Faculty      string `json:"faculty"`
	TypicalOffer string `json:"typical_offer"`
	MinThreshold *int   `json:"min_threshold,omitempty"`
}

// Response is the POST /assess result. The deterministic fields are always
// present; counsellor polish and ps_analysis degrade independently.
type Response struct {
	Verdict          string                     `json:"verdict"`
	Band             string                     `json:"band"`
	ChancePercent    int                        `json:"chance_percent"`
	Course           CourseSummary              `json:"course"`
	Checks           scoring.Checks             `json:"checks"`
	Competitiveness  Competitiveness            `json:"competitiveness"`
	Counsellor       Counsellor                 `json:"counsellor"`
	PSAnalysis       *statements.CourseAnalysis `json:"ps_analysis"`
	Alternatives     []Alternative              `json:"alternatives"`
	ApplicantContext *scoring.PoolContext       `json:"applicant_context,omitempty"`
}
