// Package scoring implements the deterministic offer scoring engine: a pure
// function from an applicant profile and a course requirement to a chance
// percentage, a Safe/Target/Reach band and a pass/fail checklist. It performs
// no I/O and never depends on the narrative provider.
package scoring

import "fmt"

// Assess scores an applicant against a course requirement. It is safe to
// call concurrently; identical inputs always yield identical output.
func Assess(profile ApplicantProfile, requirement CourseRequirement, pool *PoolStats) (AssessmentResult, error) {
	if err := validateProfile(profile); err != nil {
		return AssessmentResult{}, err
	}
	if requirement.MinimumThreshold == nil {
		return AssessmentResult{}, ErrMissingRequirement
	}
	threshold := *requirement.MinimumThreshold

	score, err := normalizedScore(profile, len(requirement.RequiredSubjects))
	if err != nil {
		return AssessmentResult{}, err
	}
	margin := score - threshold

	checks := buildChecks(profile, requirement, score, threshold)

	percent := chancePercent(marginInGradeSteps(profile.Curriculum, margin))
	result := AssessmentResult{
		ChancePercent: percent,
		Band:          bandFor(percent),
		Checks:        checks,
		Score:         score,
		ThresholdUsed: threshold,
		Margin:        margin,
	}

	if pool != nil && pool.N > 0 && len(pool.Distribution) > 0 {
		result.Pool = &PoolContext{
			N:          pool.N,
			Percentile: percentileOf(score, pool.Distribution),
		}
	}

	return result, nil
}

func validateProfile(profile ApplicantProfile) error {
	switch profile.Curriculum {
	case CurriculumIB:
		if profile.IB == nil {
			return fmt.Errorf("%w: curriculum IB but no IB grades", ErrValidation)
		}
		if profile.ALevels != nil {
			return fmt.Errorf("%w: curriculum IB but A-level grades present", ErrValidation)
		}
		if len(profile.IB.HL)+len(profile.IB.SL) == 0 {
			return fmt.Errorf("%w: no IB subjects", ErrValidation)
		}
	case CurriculumALevels:
		if profile.ALevels == nil {
			return fmt.Errorf("%w: curriculum A_LEVELS but no A-level grades", ErrValidation)
		}
		if profile.IB != nil {
			return fmt.Errorf("%w: curriculum A_LEVELS but IB grades present", ErrValidation)
		}
		if len(profile.ALevels.Predicted) == 0 {
			return fmt.Errorf("%w: no A-level subjects", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown curriculum %q", ErrValidation, profile.Curriculum)
	}
	return nil
}

func normalizedScore(profile ApplicantProfile, requiredCount int) (int, error) {
	if profile.Curriculum == CurriculumIB {
		return normalizeIB(profile.IB)
	}
	return normalizeALevels(profile.ALevels, requiredCount)
}

// buildChecks assembles the checklist in evaluation order: required subjects
// first, then personal statement, then the threshold comparison. A missing
// subject or absent statement is surfaced here only; neither moves the score.
func buildChecks(profile ApplicantProfile, requirement CourseRequirement, score, threshold int) Checks {
	checks := Checks{Passed: []string{}, Failed: []string{}}

	subjects := profile.subjectSet()
	for _, required := range requirement.RequiredSubjects {
		if _, ok := subjects[normalizeSubject(required)]; ok {
			checks.Passed = append(checks.Passed, fmt.Sprintf("Takes required subject: %s", required))
		} else {
			checks.Failed = append(checks.Failed, fmt.Sprintf("Missing required subject: %s", required))
		}
	}

	if profile.PersonalStatementPresent {
		checks.Passed = append(checks.Passed, "Personal statement provided")
	} else {
		checks.Failed = append(checks.Failed, "No personal statement provided")
	}

	if score >= threshold {
		checks.Passed = append(checks.Passed,
			fmt.Sprintf("Predicted score %d meets the minimum threshold %d", score, threshold))
	} else {
		checks.Failed = append(checks.Failed,
			fmt.Sprintf("Predicted score %d falls short of the minimum threshold %d by %d", score, threshold, threshold-score))
	}

	return checks
}
