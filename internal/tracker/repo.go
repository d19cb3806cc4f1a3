package tracker

import "context"

// Repo persists tracker entries.
type Repo interface {
	Insert(ctx context.Context, entry Entry) error
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	// UpdateLabel changes the label of a user's entry. ErrNotFound when the
	// entry does not exist or belongs to someone else.
	UpdateLabel(ctx context.Context, userID, entryID, label string) error
	Delete(ctx context.Context, userID, entryID string) error
	// ReassignOwner moves all of fromUserID's entries to toUserID.
	ReassignOwner(ctx context.Context, fromUserID, toUserID string) error
}
