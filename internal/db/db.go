// Package db provides PostgreSQL persistence for the job board.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Migrate creates the schema if it does not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			role          TEXT NOT NULL DEFAULT 'applicant',
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			recruiter_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title           TEXT NOT NULL,
			company         TEXT NOT NULL,
			location        TEXT NOT NULL DEFAULT '',
			description     TEXT NOT NULL DEFAULT '',
			category        TEXT NOT NULL DEFAULT 'General',
			required_skills JSONB NOT NULL DEFAULT '[]',
			nice_skills     JSONB NOT NULL DEFAULT '[]',
			is_active       BOOLEAN NOT NULL DEFAULT TRUE,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			job_id           UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			applicant_id     UUID REFERENCES users(id) ON DELETE SET NULL,
			applicant_name   TEXT NOT NULL,
			applicant_email  TEXT NOT NULL,
			skills           JSONB NOT NULL DEFAULT '[]',
			resume_file      TEXT NOT NULL DEFAULT '',
			experience       TEXT NOT NULL DEFAULT '',
			why_good_fit     TEXT NOT NULL DEFAULT '',
			links            JSONB NOT NULL DEFAULT '[]',
			status           TEXT NOT NULL DEFAULT 'pending',
			match_score      INT NOT NULL DEFAULT 0,
			required_pct     INT NOT NULL DEFAULT 0,
			nice_pct         INT NOT NULL DEFAULT 0,
			required_matches JSONB NOT NULL DEFAULT '[]',
			nice_matches     JSONB NOT NULL DEFAULT '[]',
			missing_required JSONB NOT NULL DEFAULT '[]',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS applications_job_email_idx
			ON applications (job_id, LOWER(applicant_email))`,
		`CREATE TABLE IF NOT EXISTS interviews (
			id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			application_id  UUID NOT NULL UNIQUE REFERENCES applications(id) ON DELETE CASCADE,
			job_id          UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			recruiter_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			applicant_email TEXT NOT NULL,
			scheduled_at    TIMESTAMPTZ NOT NULL,
			status          TEXT NOT NULL DEFAULT 'scheduled',
			notes           TEXT NOT NULL DEFAULT '',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS skills (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name       TEXT NOT NULL,
			category   TEXT NOT NULL DEFAULT 'General',
			aliases    JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS skills_name_idx ON skills (LOWER(name))`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
