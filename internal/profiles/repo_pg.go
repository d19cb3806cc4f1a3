package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"offr-backend/internal/scoring"
)

// PGRepo implements Repo using Postgres. Grades are stored as a single
// JSONB document so the two curriculum shapes share one column.
type PGRepo struct {
	DB *sql.DB
}

type gradesDoc struct {
	IB      *scoring.IBGrades     `json:"ib,omitempty"`
	ALevels *scoring.ALevelGrades `json:"a_levels,omitempty"`
}

// Get fetches the profile for a user.
func (r *PGRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, curriculum, residency, grades, interests, personal_statement, created_at, updated_at
FROM profiles
WHERE user_id = $1`
	var profile Profile
	var grades, interests []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Curriculum,
		&profile.Residency,
		&grades,
		&interests,
		&profile.PersonalStatement,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}

	var doc gradesDoc
	if err := json.Unmarshal(grades, &doc); err != nil {
		return Profile{}, fmt.Errorf("decode grades: %w", err)
	}
	profile.IB = doc.IB
	profile.ALevels = doc.ALevels
	if err := json.Unmarshal(interests, &profile.Interests); err != nil {
		return Profile{}, fmt.Errorf("decode interests: %w", err)
	}
	return profile, nil
}

// Upsert inserts or replaces the profile for a user.
func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	grades, err := json.Marshal(gradesDoc{IB: profile.IB, ALevels: profile.ALevels})
	if err != nil {
		return fmt.Errorf("encode grades: %w", err)
	}
	if profile.Interests == nil {
		profile.Interests = []string{}
	}
	interests, err := json.Marshal(profile.Interests)
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}

	const query = `
INSERT INTO profiles (user_id, curriculum, residency, grades, interests, personal_statement, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
    curriculum = EXCLUDED.curriculum,
    residency = EXCLUDED.residency,
    grades = EXCLUDED.grades,
    interests = EXCLUDED.interests,
    personal_statement = EXCLUDED.personal_statement,
    updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query,
		profile.UserID,
		profile.Curriculum,
		profile.Residency,
		grades,
		interests,
		profile.PersonalStatement,
	)
	return err
}

// ReassignOwner moves a guest profile to a signed-in user unless the target
// already has one.
func (r *PGRepo) ReassignOwner(ctx context.Context, fromUserID, toUserID string) error {
	const query = `
UPDATE profiles
SET user_id = $2, updated_at = now()
WHERE user_id = $1
  AND NOT EXISTS (SELECT 1 FROM profiles WHERE user_id = $2)`
	_, err := r.DB.ExecContext(ctx, query, fromUserID, toUserID)
	return err
}
