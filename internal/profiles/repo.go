package profiles

import "context"

// Repo defines persistence operations for profiles.
type Repo interface {
	Get(ctx context.Context, userID string) (Profile, error)
	Upsert(ctx context.Context, profile Profile) error
	// ReassignOwner moves a guest-owned profile to a signed-in user. A
	// no-op when the guest has no profile; keeps the target's existing
	// profile when both exist.
	ReassignOwner(ctx context.Context, fromUserID, toUserID string) error
}
