package profiles

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Profile)}
}

// Get returns the profile for a user.
func (r *MemoryRepo) Get(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.data[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

// Upsert stores the profile for a user.
func (r *MemoryRepo) Upsert(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.data[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.data[profile.UserID] = profile
	return nil
}

// ReassignOwner moves a guest profile to a signed-in user unless the target
// already has one.
func (r *MemoryRepo) ReassignOwner(ctx context.Context, fromUserID, toUserID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	source, ok := r.data[fromUserID]
	if !ok {
		return nil
	}
	if _, exists := r.data[toUserID]; exists {
		return nil
	}
	source.UserID = toUserID
	source.UpdatedAt = time.Now().UTC()
	r.data[toUserID] = source
	delete(r.data, fromUserID)
	return nil
}
