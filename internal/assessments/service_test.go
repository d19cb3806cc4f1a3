package assessments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"offr-backend/internal/catalogue"
	"offr-backend/internal/narrative"
	"offr-backend/internal/scoring"
	"offr-backend/internal/statements"
	"offr-backend/internal/usage"
)

type fixedProvider struct {
	raw json.RawMessage
	err error
}

func (f fixedProvider) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	return f.raw, f.err
}

func newTestService(provider narrative.Provider) *Service {
	cat := catalogue.NewService(catalogue.NewMemoryRepo(), catalogue.NoopCache{})
	quota := usage.NewService(usage.NewMemoryStore())
	stmts := statements.NewService(provider, "test-model")
	return NewService(cat, quota, stmts, provider)
}

func ibRequest(courseID string) Request {
	return Request{
		CourseID:   courseID,
		HomeOrIntl: "home",
		Curriculum: "IB",
		IB: &scoring.IBGrades{
			HL: []scoring.IBGrade{
				{Subject: "Mathematics", Grade: 6},
				{Subject: "Physics", Grade: 6},
				{Subject: "Chemistry", Grade: 6},
			},
			SL: []scoring.IBGrade{
				{Subject: "English", Grade: 6},
				{Subject: "History", Grade: 6},
				{Subject: "Spanish", Grade: 6},
			},
			CorePoints: 2,
		},
	}
}

func TestAssessDeterministicFields(t *testing.T) {
	svc := newTestService(narrative.Placeholder{})

	resp, err := svc.Assess(context.Background(), "u1", ibRequest("ucl-cs"))
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}

	if resp.Competitiveness.Score != 38 || resp.Competitiveness.ThresholdUsed != 40 {
		t.Fatalf("unexpected competitiveness: %+v", resp.Competitiveness)
	}
	if resp.Competitiveness.Margin != -2 {
		t.Fatalf("expected margin -2, got %d", resp.Competitiveness.Margin)
	}
	if resp.Band != "Reach" || resp.ChancePercent != 26 {
		t.Fatalf("expected Reach/26, got %s/%d", resp.Band, resp.ChancePercent)
	}
	if resp.Course.ID != "ucl-cs" || resp.Course.UniversityID != "ucl" {
		t.Fatalf("unexpected course summary: %+v", resp.Course)
	}
	if resp.ApplicantContext == nil || resp.ApplicantContext.N == 0 {
		t.Fatalf("expected applicant context from the course pool, got %+v", resp.ApplicantContext)
	}
	if resp.PSAnalysis != nil {
		t.Fatalf("no PS was sent, got analysis %+v", resp.PSAnalysis)
	}
	if len(resp.Counsellor.Strengths) == 0 || len(resp.Counsellor.WhatToDoNext) == 0 {
		t.Fatalf("expected default counsellor block, got %+v", resp.Counsellor)
	}

	found := false
	for _, check := range resp.Checks.Passed {
		if check == "Takes required subject: Mathematics" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected subject check in passed, got %+v", resp.Checks)
	}
}

func TestAssessAlternativesStayUnderTarget(t *testing.T) {
	svc := newTestService(narrative.Placeholder{})

	resp, err := svc.Assess(context.Background(), "u1", ibRequest("ucl-cs"))
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if len(resp.Alternatives) > 3 {
		t.Fatalf("expected at most 3 alternatives, got %d", len(resp.Alternatives))
	}
	for _, alt := range resp.Alternatives {
		if alt.ID == "ucl-cs" {
			t.Fatalf("assessed course must not suggest itself")
		}
		if alt.MinThreshold == nil || *alt.MinThreshold > 40 {
			t.Fatalf("alternative above target threshold: %+v", alt)
		}
	}
}

func TestAssessUnknownCourse(t *testing.T) {
	svc := newTestService(narrative.Placeholder{})

	_, err := svc.Assess(context.Background(), "u1", ibRequest("nowhere-underwater-basketweaving"))
	if !catalogue.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAssessCurriculumMismatch(t *testing.T) {
	svc := newTestService(narrative.Placeholder{})

	req := ibRequest("ucl-cs")
	req.Curriculum = "A_LEVELS"
	if _, err := svc.Assess(context.Background(), "u1", req); !errors.Is(err, scoring.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAssessQuotaExhausted(t *testing.T) {
	svc := newTestService(narrative.Placeholder{})
	ctx := context.Background()

	for {
		if _, err := svc.usage.Consume(ctx, "u1"); err != nil {
			break
		}
	}

	_, err := svc.Assess(ctx, "u1", ibRequest("ucl-cs"))
	if !errors.Is(err, usage.ErrLimitReached) {
		t.Fatalf("expected limit reached, got %v", err)
	}
}

func TestAssessCounsellorPolishApplied(t *testing.T) {
	provider := fixedProvider{raw: json.RawMessage(`{
		"strengths": ["Polished strength"],
		"risks": ["Polished risk"],
		"what_to_do_next": ["Polished step"],
		"notes": ["Polished note"]
	}`)}
	svc := newTestService(provider)

	resp, err := svc.Assess(context.Background(), "u1", ibRequest("ucl-cs"))
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if len(resp.Counsellor.Strengths) != 1 || resp.Counsellor.Strengths[0] != "Polished strength" {
		t.Fatalf("expected polished counsellor, got %+v", resp.Counsellor)
	}
	if len(resp.Counsellor.Notes) != 1 || resp.Counsellor.Notes[0] != "Polished note" {
		t.Fatalf("expected appended notes, got %+v", resp.Counsellor.Notes)
	}
}

func TestAssessProviderFailureKeepsDefaults(t *testing.T) {
	provider := fixedProvider{err: narrative.NewProviderError(narrative.CodeTimeout, "slow", nil)}
	svc := newTestService(provider)

	resp, err := svc.Assess(context.Background(), "u1", ibRequest("ucl-cs"))
	if err != nil {
		t.Fatalf("AI failure must not fail the assessment: %v", err)
	}
	if resp.Band != "Reach" || resp.ChancePercent != 26 {
		t.Fatalf("deterministic fields changed: %s/%d", resp.Band, resp.ChancePercent)
	}
	if len(resp.Counsellor.Strengths) == 0 {
		t.Fatalf("expected default counsellor to survive, got %+v", resp.Counsellor)
	}
}

func TestAssessPSFailureAddsNote(t *testing.T) {
	svc := newTestService(narrative.Placeholder{})

	req := ibRequest("ucl-cs")
	req.PS = &PSInput{Format: statements.FormatSingle, Statement: "I built a compiler for a toy language."}
	resp, err := svc.Assess(context.Background(), "u1", req)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if resp.PSAnalysis != nil {
		t.Fatalf("placeholder provider cannot produce analysis, got %+v", resp.PSAnalysis)
	}
	if len(resp.Counsellor.Notes) == 0 {
		t.Fatalf("expected a note about unavailable PS analysis")
	}

	found := false
	for _, check := range resp.Checks.Passed {
		if check == "Personal statement provided" {
			found = true
		}
	}
	if !found {
		t.Fatalf("PS presence must still surface in checks, got %+v", resp.Checks)
	}
}
