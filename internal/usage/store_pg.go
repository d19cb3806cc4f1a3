package usage

import (
	"context"
	"database/sql"
	"errors"
)

// PGStore persists usage counters in Postgres.
type PGStore struct {
	db *sql.DB
}

// NewPGStore constructs a PGStore.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Get(ctx context.Context, userID, period string) (int, error) {
	var used int
	err := s.db.QueryRowContext(ctx,
		`SELECT used FROM usage_counters WHERE user_id = $1 AND period = $2`,
		userID, period,
	).Scan(&used)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return used, nil
}

func (s *PGStore) Increment(ctx context.Context, userID, period string) (int, error) {
	var used int
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO usage_counters (user_id, period, used)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (user_id, period)
		 DO UPDATE SET used = usage_counters.used + 1
		 RETURNING used`,
		userID, period,
	).Scan(&used)
	if err != nil {
		return 0, err
	}
	return used, nil
}

func (s *PGStore) Reset(ctx context.Context, userID, period string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM usage_counters WHERE user_id = $1 AND period = $2`,
		userID, period,
	)
	return err
}
