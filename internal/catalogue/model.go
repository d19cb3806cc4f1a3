package catalogue

import "errors"

// University is one of the covered UK institutions.
type University struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Course is a single degree offering with its entry requirements.
// Thresholds are tracked per curriculum: IB points out of 45 and a UCAS
// tariff equivalent for A-levels. Either may be absent.
type Course struct {
	ID                 string   `json:"id"`
	UniversityID       string   `json:"university_id"`
	Name               string   `json:"name"`
	Faculty            string   `json:"faculty"`
	TypicalOffer       string   `json:"typical_offer"`
	MinThresholdIB     *int     `json:"min_threshold_ib,omitempty"`
	MinThresholdTariff *int     `json:"min_threshold_tariff,omitempty"`
	RequiredSubjects   []string `json:"required_subjects"`
	PSExpectedSignals  []string `json:"ps_expected_signals,omitempty"`
}

// ThresholdFor picks the threshold matching a curriculum ("IB" or
// "A_LEVELS"). Nil means the course has no usable threshold on that scale.
func (c Course) ThresholdFor(curriculum string) *int {
	if curriculum == "A_LEVELS" {
		return c.MinThresholdTariff
	}
	return c.MinThresholdIB
}

// PoolStat is the historical applicant pool for a course. Distribution
// holds normalized scores of past offer holders.
type PoolStat struct {
	CourseID     string `json:"course_id"`
	SampleSize   int    `json:"sample_size"`
	Distribution []int  `json:"distribution"`
}

// CourseFilter narrows a catalogue listing.
type CourseFilter struct {
	UniversityID string
	Query        string
}

// ErrNotFound is returned when a course, university or pool stat is absent.
var ErrNotFound = errors.New("not found")
