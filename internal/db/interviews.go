package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Interview slots run hourly across the working day.
const (
	firstSlotHour = 9
	lastSlotHour  = 17
)

const interviewColumns = `id, application_id, job_id, recruiter_id, applicant_email,
	scheduled_at, status, notes, created_at`

func scanInterview(row pgx.Row) (*Interview, error) {
	var iv Interview
	err := row.Scan(&iv.ID, &iv.ApplicationID, &iv.JobID, &iv.RecruiterID,
		&iv.ApplicantEmail, &iv.ScheduledAt, &iv.Status, &iv.Notes, &iv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

// InterviewCreateInput holds the fields for a new interview
type InterviewCreateInput struct {
	ApplicationID  uuid.UUID
	JobID          uuid.UUID
	RecruiterID    uuid.UUID
	ApplicantEmail string
	ScheduledAt    time.Time
	Notes          string
}

// CreateInterview schedules an interview for an application. The unique
// constraint on application_id enforces at most one interview per
// application.
func (db *DB) CreateInterview(ctx context.Context, input *InterviewCreateInput) (*Interview, error) {
	iv, err := scanInterview(db.pool.QueryRow(ctx,
		`INSERT INTO interviews (application_id, job_id, recruiter_id, applicant_email,
		                         scheduled_at, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+interviewColumns,
		input.ApplicationID, input.JobID, input.RecruiterID, input.ApplicantEmail,
		input.ScheduledAt, input.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return iv, nil
}

// GetInterviewByID retrieves an interview by ID, or nil if none exists
func (db *DB) GetInterviewByID(ctx context.Context, id uuid.UUID) (*Interview, error) {
	iv, err := scanInterview(db.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return iv, nil
}

// GetInterviewByApplication retrieves the interview for an application,
// or nil if none was scheduled
func (db *DB) GetInterviewByApplication(ctx context.Context, applicationID uuid.UUID) (*Interview, error) {
	iv, err := scanInterview(db.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE application_id = $1`,
		applicationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return iv, nil
}

// ListInterviewsByRecruiter retrieves a recruiter's interviews in
// chronological order
func (db *DB) ListInterviewsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Interview, error) {
	return db.listInterviews(ctx,
		`SELECT `+interviewColumns+` FROM interviews
		 WHERE recruiter_id = $1 ORDER BY scheduled_at ASC`,
		recruiterID)
}

// ListInterviewsByEmail retrieves an applicant's interviews in
// chronological order
func (db *DB) ListInterviewsByEmail(ctx context.Context, email string) ([]Interview, error) {
	return db.listInterviews(ctx,
		`SELECT `+interviewColumns+` FROM interviews
		 WHERE LOWER(applicant_email) = LOWER($1) ORDER BY scheduled_at ASC`,
		email)
}

func (db *DB) listInterviews(ctx context.Context, query string, args ...any) ([]Interview, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	interviews := []Interview{}
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, *iv)
	}
	return interviews, nil
}

// UpdateInterviewStatus sets an interview's status and returns the stored
// row, or nil when the interview does not exist
func (db *DB) UpdateInterviewStatus(ctx context.Context, id uuid.UUID, status string) (*Interview, error) {
	iv, err := scanInterview(db.pool.QueryRow(ctx,
		`UPDATE interviews SET status = $2 WHERE id = $1
		 RETURNING `+interviewColumns,
		id, status,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update interview status: %w", err)
	}
	return iv, nil
}

// AvailableSlots returns the free hourly interview slots for a recruiter
// on the given day, as "15:04" labels. Cancelled interviews free their
// slot again.
func (db *DB) AvailableSlots(ctx context.Context, recruiterID uuid.UUID, day time.Time) ([]string, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := db.pool.Query(ctx,
		`SELECT scheduled_at FROM interviews
		 WHERE recruiter_id = $1 AND status != $2
		   AND scheduled_at >= $3 AND scheduled_at < $4`,
		recruiterID, InterviewCancelled, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked slots: %w", err)
	}
	defer rows.Close()

	taken := make(map[int]bool)
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return nil, err
		}
		taken[at.In(day.Location()).Hour()] = true
	}

	slots := []string{}
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		if !taken[hour] {
			slots = append(slots, fmt.Sprintf("%02d:00", hour))
		}
	}
	return slots, nil
}
