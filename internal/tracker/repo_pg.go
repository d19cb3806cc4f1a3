package tracker

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo persists tracker entries in Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Insert(ctx context.Context, entry Entry) error {
	snapshot, err := json.Marshal(entry.Snapshot)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO tracker_entries (id, user_id, course_id, label, snapshot, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		entry.ID, entry.UserID, entry.CourseID, entry.Label, snapshot, entry.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, course_id, label, snapshot, created_at, updated_at
		 FROM tracker_entries
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		var snapshot []byte
		if err := rows.Scan(&e.ID, &e.CourseID, &e.Label, &snapshot, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.UserID = userID
		e.Snapshot = json.RawMessage(snapshot)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PGRepo) UpdateLabel(ctx context.Context, userID, entryID, label string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE tracker_entries SET label = $1, updated_at = now()
		 WHERE id = $2 AND user_id = $3`,
		label, entryID, userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, userID, entryID string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM tracker_entries WHERE id = $1 AND user_id = $2`,
		entryID, userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) ReassignOwner(ctx context.Context, fromUserID, toUserID string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE tracker_entries SET user_id = $1, updated_at = now() WHERE user_id = $2`,
		toUserID, fromUserID,
	)
	return err
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
