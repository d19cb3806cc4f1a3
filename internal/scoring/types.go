package scoring

import "errors"

// Curriculum identifies the grading scheme an applicant follows.
type Curriculum string

const (
	CurriculumIB      Curriculum = "IB"
	CurriculumALevels Curriculum = "A_LEVELS"
)

// Residency is the applicant's fee status.
type Residency string

const (
	ResidencyHome          Residency = "home"
	ResidencyInternational Residency = "international"
)

// Band is the coarse admission-likelihood classification.
type Band string

const (
	BandSafe   Band = "Safe"
	BandTarget Band = "Target"
	BandReach  Band = "Reach"
)

// IBGrade is a single IB subject with its predicted grade (1..7).
type IBGrade struct {
	Subject string `json:"subject"`
	Grade   int    `json:"grade"`
}

// IBGrades holds an IB applicant's predicted grades.
type IBGrades struct {
	HL         []IBGrade `json:"hl"`
	SL         []IBGrade `json:"sl"`
	CorePoints int       `json:"core_points"`
}

// ALevelGrade is a single A-level subject with its predicted letter grade.
type ALevelGrade struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
}

// ALevelGrades holds an A-level applicant's predicted grades.
type ALevelGrades struct {
	Predicted []ALevelGrade `json:"predicted"`
}

// ApplicantProfile is the normalized input to Assess. Exactly one of IB or
// ALevels must be populated, matching Curriculum.
type ApplicantProfile struct {
	Curriculum               Curriculum
	IB                       *IBGrades
	ALevels                  *ALevelGrades
	Residency                Residency
	PersonalStatementPresent bool
}

// CourseRequirement is what a course demands of applicants. TypicalOffer is
// display-only and never used in scoring.
type CourseRequirement struct {
	TypicalOffer     string
	MinimumThreshold *int
	RequiredSubjects []string
}

// PoolStats is an optional historical applicant pool for a course.
// Distribution holds normalized scores of past offer holders.
type PoolStats struct {
	N            int
	Distribution []int
}

// Checks lists satisfied and unsatisfied criteria, in evaluation order.
type Checks struct {
	Passed []string `json:"passed"`
	Failed []string `json:"failed"`
}

// PoolContext reports the applicant's standing within a historical pool.
type PoolContext struct {
	N          int `json:"n"`
	Percentile int `json:"percentile"`
}

// AssessmentResult is the output of Assess. A fresh value is produced on
// every call and never mutated afterwards.
type AssessmentResult struct {
	ChancePercent int
	Band          Band
	Checks        Checks
	Score         int
	ThresholdUsed int
	Margin        int
	Pool          *PoolContext
}

var (
	// ErrValidation indicates malformed or internally inconsistent input.
	ErrValidation = errors.New("invalid applicant profile")

	// ErrMissingRequirement indicates the course has no usable threshold.
	ErrMissingRequirement = errors.New("course has no minimum threshold")
)
