package catalogue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const courseColumns = `id, university_id, name, faculty, typical_offer, min_threshold_ib, min_threshold_tariff, required_subjects, ps_expected_signals`

// GetCourse fetches one course by ID.
func (r *PGRepo) GetCourse(ctx context.Context, id string) (Course, error) {
	query := `
SELECT ` + courseColumns + `
FROM courses
WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, id)
	course, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, ErrNotFound
	}
	return course, err
}

// ListCourses returns courses matching the filter, ordered by name.
func (r *PGRepo) ListCourses(ctx context.Context, filter CourseFilter) ([]Course, error) {
	query := `
SELECT ` + courseColumns + `
FROM courses`
	var conds []string
	var args []any
	if filter.UniversityID != "" {
		args = append(args, filter.UniversityID)
		conds = append(conds, fmt.Sprintf("university_id = $%d", len(args)))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+strings.ToLower(q)+"%")
		conds = append(conds, fmt.Sprintf("(lower(name) LIKE $%d OR lower(faculty) LIKE $%d)", len(args), len(args)))
	}
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY name"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCourses(rows)
}

// ListByFaculty returns all courses in a faculty except the given one.
func (r *PGRepo) ListByFaculty(ctx context.Context, faculty, excludeCourseID string) ([]Course, error) {
	query := `
SELECT ` + courseColumns + `
FROM courses
WHERE faculty = $1 AND id <> $2
ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query, faculty, excludeCourseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCourses(rows)
}

// ListUniversities returns all universities ordered by name.
func (r *PGRepo) ListUniversities(ctx context.Context) ([]University, error) {
	query := `
SELECT id, name, region
FROM universities
ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unis []University
	for rows.Next() {
		var u University
		if err := rows.Scan(&u.ID, &u.Name, &u.Region); err != nil {
			return nil, err
		}
		unis = append(unis, u)
	}
	return unis, rows.Err()
}

// GetPoolStat fetches the historical pool for a course.
func (r *PGRepo) GetPoolStat(ctx context.Context, courseID string) (PoolStat, error) {
	query := `
SELECT course_id, sample_size, distribution
FROM pool_stats
WHERE course_id = $1`
	var stat PoolStat
	var distribution []byte
	err := r.DB.QueryRowContext(ctx, query, courseID).Scan(&stat.CourseID, &stat.SampleSize, &distribution)
	if errors.Is(err, sql.ErrNoRows) {
		return PoolStat{}, ErrNotFound
	}
	if err != nil {
		return PoolStat{}, err
	}
	if err := json.Unmarshal(distribution, &stat.Distribution); err != nil {
		return PoolStat{}, fmt.Errorf("decode distribution: %w", err)
	}
	return stat, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (Course, error) {
	var course Course
	var ibThreshold, tariffThreshold sql.NullInt64
	var requiredSubjects, expectedSignals []byte
	err := row.Scan(
		&course.ID,
		&course.UniversityID,
		&course.Name,
		&course.Faculty,
		&course.TypicalOffer,
		&ibThreshold,
		&tariffThreshold,
		&requiredSubjects,
		&expectedSignals,
	)
	if err != nil {
		return Course{}, err
	}
	if ibThreshold.Valid {
		v := int(ibThreshold.Int64)
		course.MinThresholdIB = &v
	}
	if tariffThreshold.Valid {
		v := int(tariffThreshold.Int64)
		course.MinThresholdTariff = &v
	}
	if err := json.Unmarshal(requiredSubjects, &course.RequiredSubjects); err != nil {
		return Course{}, fmt.Errorf("decode required_subjects: %w", err)
	}
	if err := json.Unmarshal(expectedSignals, &course.PSExpectedSignals); err != nil {
		return Course{}, fmt.Errorf("decode ps_expected_signals: %w", err)
	}
	return course, nil
}

func collectCourses(rows *sql.Rows) ([]Course, error) {
	var courses []Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}
