package usage

import (
	"context"
	"time"
)

type store interface {
	// Get returns the used count for a user in a period, 0 when absent.
	Get(ctx context.Context, userID, period string) (int, error)
	// Increment bumps the used count for a user in a period by one and
	// returns the new count.
	Increment(ctx context.Context, userID, period string) (int, error)
	// Reset clears the counter for a user in a period.
	Reset(ctx context.Context, userID, period string) error
}

// Service tracks per-user AI assessment quotas.
type Service struct {
	store store
	now   func() time.Time
}

// NewService builds a usage service over the given store.
func NewService(store store) *Service {
	return &Service{store: store, now: time.Now}
}

// Get returns the user's usage for the current period.
func (s *Service) Get(ctx context.Context, userID string) (Usage, error) {
	now := s.now()
	used, err := s.store.Get(ctx, userID, currentPeriod(now))
	if err != nil {
		return Usage{}, err
	}
	u := defaultUsage(now)
	u.Used = used
	return u, nil
}

// Consume spends one AI assessment from the user's quota. It returns the
// updated usage, or ErrLimitReached when the period's allowance is gone.
func (s *Service) Consume(ctx context.Context, userID string) (Usage, error) {
	now := s.now()
	period := currentPeriod(now)

	used, err := s.store.Get(ctx, userID, period)
	if err != nil {
		return Usage{}, err
	}
	u := defaultUsage(now)
	if used >= u.Limit {
		u.Used = used
		return u, ErrLimitReached
	}

	newUsed, err := s.store.Increment(ctx, userID, period)
	if err != nil {
		return Usage{}, err
	}
	u.Used = newUsed
	return u, nil
}

// Reset clears the user's counter for the current period.
func (s *Service) Reset(ctx context.Context, userID string) error {
	return s.store.Reset(ctx, userID, currentPeriod(s.now()))
}
