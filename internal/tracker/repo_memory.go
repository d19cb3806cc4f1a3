package tracker

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Entry
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Entry)}
}

func (r *MemoryRepo) Insert(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[entry.ID] = entry
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0)
	for _, e := range r.data {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (r *MemoryRepo) UpdateLabel(ctx context.Context, userID, entryID, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.data[entryID]
	if !ok || entry.UserID != userID {
		return ErrNotFound
	}
	entry.Label = label
	entry.UpdatedAt = time.Now().UTC()
	r.data[entryID] = entry
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, entryID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.data[entryID]
	if !ok || entry.UserID != userID {
		return ErrNotFound
	}
	delete(r.data, entryID)
	return nil
}

func (r *MemoryRepo) ReassignOwner(ctx context.Context, fromUserID, toUserID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	for id, e := range r.data {
		if e.UserID == fromUserID {
			e.UserID = toUserID
			e.UpdatedAt = now
			r.data[id] = e
		}
	}
	return nil
}
