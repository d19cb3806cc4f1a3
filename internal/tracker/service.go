package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service manages a user's tracked course choices.
type Service struct {
	repo Repo
	now  func() time.Time
}

// NewService builds a tracker service.
func NewService(repo Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Add saves an assessment snapshot for a course. The snapshot is stored
// verbatim so past assessments stay readable even if the scoring model
// changes.
func (s *Service) Add(ctx context.Context, userID, courseID, label string, snapshot json.RawMessage) (Entry, error) {
	if courseID == "" {
		return Entry{}, fmt.Errorf("%w: course_id is required", ErrValidation)
	}
	if len(snapshot) == 0 || !json.Valid(snapshot) {
		return Entry{}, fmt.Errorf("%w: snapshot must be a JSON document", ErrValidation)
	}
	if err := ValidateLabel(label); err != nil {
		return Entry{}, err
	}

	now := s.now().UTC()
	entry := Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		CourseID:  courseID,
		Label:     label,
		Snapshot:  snapshot,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns the user's entries, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SetLabel relabels an entry.
func (s *Service) SetLabel(ctx context.Context, userID, entryID, label string) error {
	if err := ValidateLabel(label); err != nil {
		return err
	}
	return s.repo.UpdateLabel(ctx, userID, entryID, label)
}

// Remove deletes an entry.
func (s *Service) Remove(ctx context.Context, userID, entryID string) error {
	return s.repo.Delete(ctx, userID, entryID)
}

// ReassignOwner moves all entries of a guest to a signed-in user.
func (s *Service) ReassignOwner(ctx context.Context, fromUserID, toUserID string) error {
	return s.repo.ReassignOwner(ctx, fromUserID, toUserID)
}
