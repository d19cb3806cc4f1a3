package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Entry is one tracked course choice with its saved assessment snapshot.
type Entry struct {
	ID         string          `json:"id"`
	UserID     string          `json:"-"`
	CourseID   string          `json:"courseId"`
	CourseName string          `json:"courseName,omitempty"`
	Label      string          `json:"label,omitempty"`
	Snapshot   json.RawMessage `json:"snapshot"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Labels a student can put on a tracked choice. An empty label means
// unlabelled.
const (
	LabelFirm      = "Firm"
	LabelInsurance = "Insurance"
	LabelBackup    = "Backup"
	LabelWildcard  = "Wildcard"
)

var (
	ErrNotFound   = errors.New("tracker entry not found")
	ErrValidation = errors.New("validation error")
)

// ValidateLabel checks a label against the allowed set.
func ValidateLabel(label string) error {
	switch label {
	case "", LabelFirm, LabelInsurance, LabelBackup, LabelWildcard:
		return nil
	}
	return fmt.Errorf("%w: unknown label %q", ErrValidation, label)
}
