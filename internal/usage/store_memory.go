package usage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory usage counter keyed by user and period.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]int
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]int)}
}

func counterKey(userID, period string) string {
	return userID + "|" + period
}

func (s *MemoryStore) Get(ctx context.Context, userID, period string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[counterKey(userID, period)], nil
}

func (s *MemoryStore) Increment(ctx context.Context, userID, period string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := counterKey(userID, period)
	s.data[key]++
	return s.data[key], nil
}

func (s *MemoryStore) Reset(ctx context.Context, userID, period string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, counterKey(userID, period))
	return nil
}
