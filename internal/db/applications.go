package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, job_id, applicant_id, applicant_name, applicant_email,
	skills, resume_file, experience, why_good_fit, links, status,
	match_score, required_pct, nice_pct,
	required_matches, nice_matches, missing_required, created_at, updated_at`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.ApplicantName, &a.ApplicantEmail,
		&a.Skills, &a.ResumeFile, &a.Experience, &a.WhyGoodFit, &a.Links, &a.Status,
		&a.MatchScore, &a.RequiredPct, &a.NicePct,
		&a.RequiredMatches, &a.NiceMatches, &a.MissingRequired, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ApplicationCreateInput holds the fields for a new application
type ApplicationCreateInput struct {
	JobID           uuid.UUID
	ApplicantID     *uuid.UUID
	ApplicantName   string
	ApplicantEmail  string
	Skills          []string
	ResumeFile      string
	Experience      string
	WhyGoodFit      string
	Links           []string
	MatchScore      int
	RequiredPct     int
	NicePct         int
	RequiredMatches []string
	NiceMatches     []string
	MissingRequired []string
}

// CreateApplication inserts an application and returns the stored row
func (db *DB) CreateApplication(ctx context.Context, input *ApplicationCreateInput) (*Application, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, applicant_id, applicant_name, applicant_email,
		                           skills, resume_file, experience, why_good_fit, links,
		                           match_score, required_pct, nice_pct,
		                           required_matches, nice_matches, missing_required)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING `+applicationColumns,
		input.JobID, input.ApplicantID, input.ApplicantName, strings.ToLower(input.ApplicantEmail),
		StringArray(input.Skills), input.ResumeFile,
		input.Experience, input.WhyGoodFit, StringArray(input.Links),
		input.MatchScore, input.RequiredPct, input.NicePct,
		StringArray(input.RequiredMatches), StringArray(input.NiceMatches),
		StringArray(input.MissingRequired),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

// GetApplicationByID retrieves an application by ID, or nil if none exists
func (db *DB) GetApplicationByID(ctx context.Context, id uuid.UUID) (*Application, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// HasApplication reports whether this email already applied to the job
func (db *DB) HasApplication(ctx context.Context, jobID uuid.UUID, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM applications WHERE job_id = $1 AND LOWER(applicant_email) = $2
		 )`,
		jobID, strings.ToLower(email),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check application: %w", err)
	}
	return exists, nil
}

// ListApplicationsByJob retrieves a job's applications, best match first
func (db *DB) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE job_id = $1
		 ORDER BY match_score DESC, created_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// ListApplicationsByRecruiter retrieves applications across all of a
// recruiter's jobs, best match first
func (db *DB) ListApplicationsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+prefixColumns("a", applicationColumns)+`
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.recruiter_id = $1
		 ORDER BY a.match_score DESC, a.created_at ASC`,
		recruiterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// ListApplicationsByEmail retrieves an applicant's own applications
func (db *DB) ListApplicationsByEmail(ctx context.Context, email string) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE LOWER(applicant_email) = $1
		 ORDER BY created_at DESC`,
		strings.ToLower(email),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// UpdateApplicationStatus sets an application's status and returns the
// stored row, or nil when the application does not exist
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*Application, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`UPDATE applications SET status = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+applicationColumns,
		id, status,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}

// prefixColumns qualifies a comma-separated column list with a table alias
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
