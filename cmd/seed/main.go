package main

// Load the built-in catalogue dataset into Postgres:
//   go run ./cmd/seed
//
// Safe to re-run: rows are upserted by primary key.

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"

	"offr-backend/internal/catalogue"
	"offr-backend/internal/shared/config"
	"offr-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := seed(ctx, sqlDB); err != nil {
		log.Printf("seed failed: %v", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, sqlDB *sql.DB) error {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, u := range catalogue.SeedUniversities() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO universities (id, name, region)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, region = EXCLUDED.region`,
			u.ID, u.Name, u.Region,
		)
		if err != nil {
			return err
		}
	}

	for _, c := range catalogue.SeedCourses() {
		subjects, err := json.Marshal(c.RequiredSubjects)
		if err != nil {
			return err
		}
		signals, err := json.Marshal(c.PSExpectedSignals)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO courses
			   (id, university_id, name, faculty, typical_offer, min_threshold_ib, min_threshold_tariff, required_subjects, ps_expected_signals)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (id) DO UPDATE SET
			   university_id = EXCLUDED.university_id,
			   name = EXCLUDED.name,
			   faculty = EXCLUDED.faculty,
			   typical_offer = EXCLUDED.typical_offer,
			   min_threshold_ib = EXCLUDED.min_threshold_ib,
			   min_threshold_tariff = EXCLUDED.min_threshold_tariff,
			   required_subjects = EXCLUDED.required_subjects,
			   ps_expected_signals = EXCLUDED.ps_expected_signals`,
			c.ID, c.UniversityID, c.Name, c.Faculty, c.TypicalOffer,
			c.MinThresholdIB, c.MinThresholdTariff, subjects, signals,
		)
		if err != nil {
			return err
		}
	}

	for _, p := range catalogue.SeedPoolStats() {
		distribution, err := json.Marshal(p.Distribution)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO pool_stats (course_id, sample_size, distribution, updated_at)
			 VALUES ($1, $2, $3, now())
			 ON CONFLICT (course_id) DO UPDATE SET
			   sample_size = EXCLUDED.sample_size,
			   distribution = EXCLUDED.distribution,
			   updated_at = now()`,
			p.CourseID, p.SampleSize, distribution,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("seeded %d universities, %d courses, %d pool stats",
		len(catalogue.SeedUniversities()), len(catalogue.SeedCourses()), len(catalogue.SeedPoolStats()))
	return nil
}
