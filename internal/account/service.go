package account

import (
	"context"
	"errors"
	"strings"

	"offr-backend/internal/profiles"
	"offr-backend/internal/tracker"
)

// Service migrates guest-owned data to a signed-in user.
type Service struct {
	Profiles profiles.Repo
	Tracker  tracker.Repo
}

// ClaimResult summarizes what a claim moved. Running the same claim again
// finds nothing left under the guest id, so the operation is idempotent.
type ClaimResult struct {
	MigratedProfile        bool `json:"migratedProfile"`
	MigratedTrackerEntries int  `json:"migratedTrackerEntries"`
}

func NewService(profileRepo profiles.Repo, trackerRepo tracker.Repo) *Service {
	return &Service{Profiles: profileRepo, Tracker: trackerRepo}
}

// ClaimGuest moves the guest's profile and tracker entries to the signed-in
// user. A profile the user already owns is never overwritten.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	var result ClaimResult

	_, err := s.Profiles.Get(ctx, guestUserID)
	guestHadProfile := err == nil
	if err != nil && !errors.Is(err, profiles.ErrNotFound) {
		return ClaimResult{}, err
	}
	_, err = s.Profiles.Get(ctx, authedUserID)
	userHasProfile := err == nil
	if err != nil && !errors.Is(err, profiles.ErrNotFound) {
		return ClaimResult{}, err
	}

	if err := s.Profiles.ReassignOwner(ctx, guestUserID, authedUserID); err != nil {
		return ClaimResult{}, err
	}
	result.MigratedProfile = guestHadProfile && !userHasProfile

	guestEntries, err := s.Tracker.ListByUser(ctx, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	if err := s.Tracker.ReassignOwner(ctx, guestUserID, authedUserID); err != nil {
		return ClaimResult{}, err
	}
	result.MigratedTrackerEntries = len(guestEntries)

	return result, nil
}
