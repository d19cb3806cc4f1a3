package assessments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"offr-backend/internal/catalogue"
	"offr-backend/internal/narrative"
	"offr-backend/internal/scoring"
	"offr-backend/internal/shared/metrics"
	"offr-backend/internal/shared/telemetry"
	"offr-backend/internal/statements"
	"offr-backend/internal/usage"
)

// Service orchestrates an assessment: deterministic scoring first, then AI
// enrichment that can only add to the response, never change the verdict.
type Service struct {
	catalogue  *catalogue.Service
	usage      *usage.Service
	statements *statements.Service
	provider   narrative.Provider
}

// NewService builds an assessments service.
func NewService(cat *catalogue.Service, quota *usage.Service, stmts *statements.Service, provider narrative.Provider) *Service {
	if provider == nil {
		provider = narrative.Placeholder{}
	}
	return &Service{catalogue: cat, usage: quota, statements: stmts, provider: provider}
}

// Assess scores an applicant against a course. Returns usage.ErrLimitReached
// when the user's quota for the period is exhausted, catalogue.ErrNotFound
// for an unknown course, and the scoring sentinels for bad input.
func (s *Service) Assess(ctx context.Context, userID string, req Request) (Response, error) {
	if _, err := s.usage.Consume(ctx, userID); err != nil {
		return Response{}, err
	}

	course, err := s.catalogue.GetCourse(ctx, req.CourseID)
	if err != nil {
		return Response{}, err
	}

	profile, err := buildProfile(req)
	if err != nil {
		return Response{}, err
	}

	requirement := scoring.CourseRequirement{
		TypicalOffer:     course.TypicalOffer,
		MinimumThreshold: course.ThresholdFor(req.Curriculum),
		RequiredSubjects: course.RequiredSubjects,
	}

	pool := s.poolFor(ctx, req.CourseID)

	result, err := scoring.Assess(profile, requirement, pool)
	if err != nil {
		return Response{}, err
	}
	metrics.RecordAssessment(string(result.Band))

	resp := Response{
		Verdict:       verdictFor(result),
		Band:          string(result.Band),
		ChancePercent: result.ChancePercent,
		Course: CourseSummary{
			ID:           course.ID,
			UniversityID: course.UniversityID,
			Name:         course.Name,
			Faculty:      course.Faculty,
			TypicalOffer: course.TypicalOffer,
		},
		Checks: result.Checks,
		Competitiveness: Competitiveness{
			ThresholdUsed: result.ThresholdUsed,
			Margin:        result.Margin,
			Score:         result.Score,
		},
		ApplicantContext: result.Pool,
	}
	resp.Counsellor = defaultCounsellor(req, result)

	if req.PS != nil && hasStatementText(req.PS) {
		analysis, psErr := s.statements.AnalyseForCourse(ctx, statements.CourseContext{
			ID:              course.ID,
			Name:            course.Name,
			Faculty:         course.Faculty,
			ExpectedSignals: course.PSExpectedSignals,
		}, statements.Input{
			Format:    req.PS.Format,
			Q1:        req.PS.Q1,
			Q2:        req.PS.Q2,
			Q3:        req.PS.Q3,
			Statement: req.PS.Statement,
		})
		if psErr != nil {
			resp.Counsellor.Notes = append(resp.Counsellor.Notes,
				"Personal statement analysis is unavailable right now; the score above does not depend on it.")
			telemetry.Warn("assess.ps_analysis_failed", map[string]any{"code": narrative.CodeOf(psErr)})
		} else {
			resp.PSAnalysis = analysis
		}
	}

	s.polishCounsellor(ctx, course, req, resp.ChancePercent, result, &resp.Counsellor)

	resp.Alternatives = s.alternativesFor(ctx, course, req.Curriculum, requirement.MinimumThreshold)
	return resp, nil
}

func buildProfile(req Request) (scoring.ApplicantProfile, error) {
	var residency scoring.Residency
	switch req.HomeOrIntl {
	case "home":
		residency = scoring.ResidencyHome
	case "intl", "international":
		residency = scoring.ResidencyInternational
	default:
		return scoring.ApplicantProfile{}, fmt.Errorf("%w: home_or_intl must be home or intl", scoring.ErrValidation)
	}

	return scoring.ApplicantProfile{
		Curriculum:               scoring.Curriculum(req.Curriculum),
		IB:                       req.IB,
		ALevels:                  req.ALevels,
		Residency:                residency,
		PersonalStatementPresent: req.PS != nil && hasStatementText(req.PS),
	}, nil
}

func hasStatementText(ps *PSInput) bool {
	return ps.Statement != "" || ps.Q1 != "" || ps.Q2 != "" || ps.Q3 != ""
}

func (s *Service) poolFor(ctx context.Context, courseID string) *scoring.PoolStats {
	stat, err := s.catalogue.GetPoolStat(ctx, courseID)
	if err != nil {
		return nil
	}
	return &scoring.PoolStats{N: stat.SampleSize, Distribution: stat.Distribution}
}

func verdictFor(result scoring.AssessmentResult) string {
	if result.Band == scoring.BandSafe && len(result.Checks.Failed) == 0 {
		return "Eligible and competitive"
	}
	return "Eligible, borderline competitive"
}

func defaultCounsellor(req Request, result scoring.AssessmentResult) Counsellor {
	sign := ""
	if result.Margin >= 0 {
		sign = "+"
	}
	strengths := []string{}
	if req.Curriculum == string(scoring.CurriculumIB) {
		strengths = append(strengths, fmt.Sprintf("Predicted total: %d/45 points.", result.Score))
	} else {
		strengths = append(strengths, "A-level profile evaluated against the published minimum offer.")
	}
	strengths = append(strengths, fmt.Sprintf("Margin vs threshold: %s%d points.", sign, result.Margin))

	risks := []string{}
	risks = append(risks, result.Checks.Failed...)

	next := []string{
		"Double-check the official course page and entry requirements.",
		"Strengthen subject-specific evidence in your personal statement.",
	}
	if req.HomeOrIntl != "home" {
		next = append([]string{
			"International applicants often need a slightly higher score than the published minimum.",
		}, next...)
	}

	return Counsellor{Strengths: strengths, Risks: risks, WhatToDoNext: next, Notes: []string{}}
}

// polishCounsellor asks the provider to rewrite the advice block. Any
// failure leaves the deterministic defaults in place.
func (s *Service) polishCounsellor(ctx context.Context, course catalogue.Course, req Request, chance int, result scoring.AssessmentResult, counsellor *Counsellor) {
	detailLevel := "detailed"
	if chance >= 75 {
		detailLevel = "brief"
	}

	summary := map[string]any{
		"course_name":    course.Name,
		"faculty":        course.Faculty,
		"university_id":  course.UniversityID,
		"applicant_type": req.HomeOrIntl,
		"curriculum":     req.Curriculum,
		"verdict":        verdictFor(result),
		"band":           string(result.Band),
		"chance_percent": chance,
		"threshold_used": result.ThresholdUsed,
		"margin":         result.Margin,
		"passed":         result.Checks.Passed,
		"failed":         result.Checks.Failed,
		"ps_included":    req.PS != nil,
	}
	contextJSON, _ := json.Marshal(summary)

	start := time.Now()
	raw, err := s.provider.GenerateJSON(ctx, narrative.CounsellorPrompt(detailLevel, contextJSON))
	metrics.RecordAICall("counsellor", outcomeFor(err), time.Since(start))
	if err != nil {
		if narrative.CodeOf(err) != narrative.CodeUnavailable {
			telemetry.Warn("assess.counsellor_failed", map[string]any{"code": narrative.CodeOf(err)})
		}
		return
	}

	var polish struct {
		Strengths    []string `json:"strengths"`
		Risks        []string `json:"risks"`
		WhatToDoNext []string `json:"what_to_do_next"`
		Notes        []string `json:"notes"`
	}
	if err := json.Unmarshal(raw, &polish); err != nil {
		return
	}
	if len(polish.Strengths) > 0 {
		counsellor.Strengths = polish.Strengths
	}
	if len(polish.Risks) > 0 {
		counsellor.Risks = polish.Risks
	}
	if len(polish.WhatToDoNext) > 0 {
		counsellor.WhatToDoNext = polish.WhatToDoNext
	}
	counsellor.Notes = append(counsellor.Notes, polish.Notes...)
}

func (s *Service) alternativesFor(ctx context.Context, course catalogue.Course, curriculum string, target *int) []Alternative {
	courses, err := s.catalogue.Alternatives(ctx, course, curriculum, target)
	if err != nil {
		telemetry.Warn("assess.alternatives_failed", map[string]any{"error": err.Error()})
		return []Alternative{}
	}
	alts := make([]Alternative, 0, len(courses))
	for _, c := range courses {
		alts = append(alts, Alternative{
			ID:           c.ID,
			UniversityID: c.UniversityID,
			Name:         c.Name,
			Faculty:      c.Faculty,
			TypicalOffer: c.TypicalOffer,
			MinThreshold: c.ThresholdFor(curriculum),
		})
	}
	return alts
}

func outcomeFor(err error) string {
	if err == nil {
		return "ok"
	}
	return narrative.CodeOf(err)
}
