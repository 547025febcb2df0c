package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, recruiter_id, title, company, location, description, category,
	required_skills, nice_skills, is_active, created_at, updated_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Company, &j.Location,
		&j.Description, &j.Category, &j.RequiredSkills, &j.NiceSkills,
		&j.IsActive, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// JobCreateInput holds the fields for a new job posting
type JobCreateInput struct {
	RecruiterID    uuid.UUID
	Title          string
	Company        string
	Location       string
	Description    string
	Category       string
	RequiredSkills []string
	NiceSkills     []string
}

// CreateJob inserts a job posting and returns the stored row
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (*Job, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`INSERT INTO jobs (recruiter_id, title, company, location, description, category,
		                   required_skills, nice_skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+jobColumns,
		input.RecruiterID, input.Title, input.Company, input.Location,
		input.Description, input.Category,
		StringArray(input.RequiredSkills), StringArray(input.NiceSkills),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJobByID retrieves a job by ID, or nil if none exists
func (db *DB) GetJobByID(ctx context.Context, id uuid.UUID) (*Job, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// UpdateJob overwrites a job's mutable fields and returns the stored row.
// Returns nil when the job does not exist or belongs to another recruiter.
func (db *DB) UpdateJob(ctx context.Context, id, recruiterID uuid.UUID, input *JobCreateInput) (*Job, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`UPDATE jobs SET title = $3, company = $4, location = $5, description = $6,
		                 category = $7, required_skills = $8, nice_skills = $9,
		                 updated_at = NOW()
		 WHERE id = $1 AND recruiter_id = $2
		 RETURNING `+jobColumns,
		id, recruiterID, input.Title, input.Company, input.Location,
		input.Description, input.Category,
		StringArray(input.RequiredSkills), StringArray(input.NiceSkills),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// DeleteJob deactivates a job owned by the given recruiter. The row is
// kept so existing applications and interviews stay resolvable.
func (db *DB) DeleteJob(ctx context.Context, id, recruiterID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET is_active = FALSE, updated_at = NOW()
		 WHERE id = $1 AND recruiter_id = $2 AND is_active`, id, recruiterID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

// JobFilters holds optional filters for listing jobs
type JobFilters struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// ListJobs retrieves job postings with optional filters, newest first
func (db *DB) ListJobs(ctx context.Context, filters JobFilters) ([]Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE is_active`
	args := []any{}
	argNum := 1

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filters.Category)
		argNum++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR company ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, limit, offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// ListJobsByRecruiter retrieves all postings owned by a recruiter
func (db *DB) ListJobsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE recruiter_id = $1 AND is_active ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// ListCategories returns the distinct categories currently in use
func (db *DB) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT DISTINCT category FROM jobs WHERE is_active ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		if strings.TrimSpace(c) != "" {
			categories = append(categories, c)
		}
	}
	return categories, nil
}
