package scoring

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func ibProfile() ApplicantProfile {
	return ApplicantProfile{
		Curriculum: CurriculumIB,
		IB: &IBGrades{
			HL: []IBGrade{
				{Subject: "Mathematics", Grade: 6},
				{Subject: "Physics", Grade: 6},
				{Subject: "Chemistry", Grade: 6},
			},
			SL: []IBGrade{
				{Subject: "English", Grade: 6},
				{Subject: "History", Grade: 6},
				{Subject: "Spanish", Grade: 6},
			},
			CorePoints: 2,
		},
		Residency:                ResidencyHome,
		PersonalStatementPresent: true,
	}
}

func intPtr(v int) *int { return &v }

func TestAssessIBSafeScenario(t *testing.T) {
	result, err := Assess(ibProfile(), CourseRequirement{MinimumThreshold: intPtr(34)}, nil)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if result.Score != 38 {
		t.Fatalf("expected normalized score 38, got %d", result.Score)
	}
	if result.Margin != 4 {
		t.Fatalf("expected margin 4, got %d", result.Margin)
	}
	if result.Band != BandSafe {
		t.Fatalf("expected Safe, got %s", result.Band)
	}
	if result.ChancePercent <= 70 {
		t.Fatalf("expected chance above 70, got %d", result.ChancePercent)
	}
}

func TestAssessIBReachScenario(t *testing.T) {
	result, err := Assess(ibProfile(), CourseRequirement{MinimumThreshold: intPtr(40)}, nil)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if result.Band != BandReach {
		t.Fatalf("expected Reach, got %s", result.Band)
	}
	if result.ChancePercent >= 40 {
		t.Fatalf("expected chance below 40, got %d", result.ChancePercent)
	}
	found := false
	for _, f := range result.Checks.Failed {
		if strings.Contains(f, "falls short") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a failed check for the shortfall, got %v", result.Checks.Failed)
	}
}

func TestAssessZeroMarginIsReach(t *testing.T) {
	result, err := Assess(ibProfile(), CourseRequirement{MinimumThreshold: intPtr(38)}, nil)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if result.ChancePercent >= 40 {
		t.Fatalf("margin 0 must map below 40, got %d", result.ChancePercent)
	}
	if result.Band != BandReach {
		t.Fatalf("expected Reach at zero margin, got %s", result.Band)
	}
}

func TestAssessMissingSubjectCheck(t *testing.T) {
	profile := ApplicantProfile{
		Curriculum: CurriculumALevels,
		ALevels: &ALevelGrades{Predicted: []ALevelGrade{
			{Subject: "Mathematics", Grade: "A"},
			{Subject: "Physics", Grade: "B"},
			{Subject: "Economics", Grade: "C"},
		}},
		PersonalStatementPresent: true,
	}
	requirement := CourseRequirement{
		MinimumThreshold: intPtr(104),
		RequiredSubjects: []string{"Mathematics", "Further Mathematics"},
	}
	result, err := Assess(profile, requirement, nil)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}

	missing := 0
	for _, f := range result.Checks.Failed {
		if strings.Contains(f, "Further Mathematics") {
			missing++
		}
	}
	if missing != 1 {
		t.Fatalf("expected exactly one failed check for Further Mathematics, got %d", missing)
	}
	for _, p := range result.Checks.Passed {
		if strings.Contains(p, "Further Mathematics") {
			t.Fatalf("missing subject must not appear in passed checks: %q", p)
		}
	}
}

func TestAssessSubjectMatchIsCaseInsensitive(t *testing.T) {
	profile := ibProfile()
	requirement := CourseRequirement{
		MinimumThreshold: intPtr(34),
		RequiredSubjects: []string{"mathematics"},
	}
	result, err := Assess(profile, requirement, nil)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if len(result.Checks.Failed) != 0 {
		t.Fatalf("expected no failed checks, got %v", result.Checks.Failed)
	}
}

func TestAssessALevelsTopNTariff(t *testing.T) {
	profile := ApplicantProfile{
		Curriculum: CurriculumALevels,
		ALevels: &ALevelGrades{Predicted: []ALevelGrade{
			{Subject: "Mathematics", Grade: "A*"},
			{Subject: "Physics", Grade: "A"},
			{Subject: "Chemistry", Grade: "B"},
			{Subject: "General Studies", Grade: "E"},
		}},
		PersonalStatementPresent: true,
	}
	requirement := CourseRequirement{
		MinimumThreshold: intPtr(128),
		RequiredSubjects: []string{"Mathematics", "Physics", "Chemistry"},
	}
	result, err := Assess(profile, requirement, nil)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	// top 3 of A*, A, B, E = 56+48+40
	if result.Score != 144 {
		t.Fatalf("expected score 144, got %d", result.Score)
	}
}

func TestAssessMonotonicity(t *testing.T) {
	requirement := CourseRequirement{MinimumThreshold: intPtr(36)}
	prev := -1
	for grade := 1; grade <= 7; grade++ {
		profile := ibProfile()
		profile.IB.HL[0].Grade = grade
		result, err := Assess(profile, requirement, nil)
		if err != nil {
			t.Fatalf("Assess grade=%d: %v", grade, err)
		}
		if result.ChancePercent < prev {
			t.Fatalf("chance decreased when grade rose to %d: %d < %d", grade, result.ChancePercent, prev)
		}
		prev = result.ChancePercent
	}
}

func TestAssessBandPartition(t *testing.T) {
	requirement := CourseRequirement{MinimumThreshold: intPtr(30)}
	for grade := 1; grade <= 7; grade++ {
		for core := 0; core <= 3; core++ {
			profile := ibProfile()
			profile.IB.SL[0].Grade = grade
			profile.IB.CorePoints = core
			result, err := Assess(profile, requirement, nil)
			if err != nil {
				t.Fatalf("Assess: %v", err)
			}
			pct := result.ChancePercent
			want := BandTarget
			if pct < 40 {
				want = BandReach
			} else if pct > 70 {
				want = BandSafe
			}
			if result.Band != want {
				t.Fatalf("band %s inconsistent with percent %d", result.Band, pct)
			}
		}
	}
}

func TestAssessDeterminism(t *testing.T) {
	requirement := CourseRequirement{
		MinimumThreshold: intPtr(34),
		RequiredSubjects: []string{"Mathematics"},
	}
	pool := &PoolStats{N: 5, Distribution: []int{30, 34, 36, 38, 42}}

	first, err := Assess(ibProfile(), requirement, pool)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	second, err := Assess(ibProfile(), requirement, pool)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different outputs:\n%+v\n%+v", first, second)
	}
}

func TestAssessPercentile(t *testing.T) {
	pool := &PoolStats{N: 4, Distribution: []int{30, 34, 38, 42}}
	result, err := Assess(ibProfile(), CourseRequirement{MinimumThreshold: intPtr(34)}, pool)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if result.Pool == nil {
		t.Fatalf("expected pool context")
	}
	if result.Pool.N != 4 {
		t.Fatalf("expected n=4, got %d", result.Pool.N)
	}
	// score 38: two below, one equal of four => (2 + 0.5) / 4 = 62.5 -> 63
	if result.Pool.Percentile != 63 {
		t.Fatalf("expected percentile 63, got %d", result.Pool.Percentile)
	}
}

func TestAssessValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		profile ApplicantProfile
	}{
		{"curriculum mismatch", ApplicantProfile{Curriculum: CurriculumIB, ALevels: &ALevelGrades{Predicted: []ALevelGrade{{Subject: "Maths", Grade: "A"}}}}},
		{"both shapes", func() ApplicantProfile {
			p := ibProfile()
			p.ALevels = &ALevelGrades{Predicted: []ALevelGrade{{Subject: "Maths", Grade: "A"}}}
			return p
		}()},
		{"unknown curriculum", ApplicantProfile{Curriculum: "GCSE"}},
		{"bad IB grade", func() ApplicantProfile {
			p := ibProfile()
			p.IB.HL[0].Grade = 9
			return p
		}()},
		{"bad letter grade", ApplicantProfile{
			Curriculum: CurriculumALevels,
			ALevels:    &ALevelGrades{Predicted: []ALevelGrade{{Subject: "Maths", Grade: "F"}}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Assess(tc.profile, CourseRequirement{MinimumThreshold: intPtr(34)}, nil)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAssessMissingThreshold(t *testing.T) {
	_, err := Assess(ibProfile(), CourseRequirement{}, nil)
	if !errors.Is(err, ErrMissingRequirement) {
		t.Fatalf("expected ErrMissingRequirement, got %v", err)
	}
}

func TestAssessNoPersonalStatementIsChecklistOnly(t *testing.T) {
	withPS, err := Assess(ibProfile(), CourseRequirement{MinimumThreshold: intPtr(34)}, nil)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	profile := ibProfile()
	profile.PersonalStatementPresent = false
	withoutPS, err := Assess(profile, CourseRequirement{MinimumThreshold: intPtr(34)}, nil)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if withPS.ChancePercent != withoutPS.ChancePercent || withPS.Band != withoutPS.Band {
		t.Fatalf("personal statement must not move the score: %d/%s vs %d/%s",
			withPS.ChancePercent, withPS.Band, withoutPS.ChancePercent, withoutPS.Band)
	}
	found := false
	for _, f := range withoutPS.Checks.Failed {
		if strings.Contains(f, "personal statement") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a failed check for the absent statement, got %v", withoutPS.Checks.Failed)
	}
}
