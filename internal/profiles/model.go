package profiles

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"offr-backend/internal/scoring"
)

const maxInterests = 3

// Profile is a student's stored application profile. PS presence is always
// derived from PersonalStatement, never stored separately.
type Profile struct {
	UserID            string                `json:"-"`
	Curriculum        string                `json:"curriculum"`
	Residency         string                `json:"residency"`
	IB                *scoring.IBGrades     `json:"ib,omitempty"`
	ALevels           *scoring.ALevelGrades `json:"a_levels,omitempty"`
	Interests         []string              `json:"interests"`
	PersonalStatement string                `json:"personal_statement"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// HasGrades reports whether any grade shape is populated.
func (p Profile) HasGrades() bool {
	if p.IB != nil && len(p.IB.HL)+len(p.IB.SL) > 0 {
		return true
	}
	return p.ALevels != nil && len(p.ALevels.Predicted) > 0
}

// HasStatement reports whether the stored statement carries text.
func (p Profile) HasStatement() bool {
	return strings.TrimSpace(p.PersonalStatement) != ""
}

var (
	ErrNotFound   = errors.New("profile not found")
	ErrValidation = errors.New("invalid profile")
)

// Validate checks the writable profile fields.
func (p Profile) Validate() error {
	switch p.Curriculum {
	case "", string(scoring.CurriculumIB), string(scoring.CurriculumALevels):
	default:
		return fmt.Errorf("%w: unknown curriculum %q", ErrValidation, p.Curriculum)
	}
	switch p.Residency {
	case "", string(scoring.ResidencyHome), string(scoring.ResidencyInternational):
	default:
		return fmt.Errorf("%w: unknown residency %q", ErrValidation, p.Residency)
	}
	if len(p.Interests) > maxInterests {
		return fmt.Errorf("%w: at most %d interests", ErrValidation, maxInterests)
	}
	if p.Curriculum == string(scoring.CurriculumIB) && p.ALevels != nil {
		return fmt.Errorf("%w: curriculum IB but A-level grades present", ErrValidation)
	}
	if p.Curriculum == string(scoring.CurriculumALevels) && p.IB != nil {
		return fmt.Errorf("%w: curriculum A_LEVELS but IB grades present", ErrValidation)
	}
	return nil
}
