package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleApplicant = "applicant"
	RoleRecruiter = "recruiter"
)

// Application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Interview statuses.
const (
	InterviewScheduled = "scheduled"
	InterviewCompleted = "completed"
	InterviewCancelled = "cancelled"
)

// User represents an account, either an applicant or a recruiter
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Job represents a job posting
type Job struct {
	ID             uuid.UUID   `json:"id"`
	RecruiterID    uuid.UUID   `json:"recruiter_id"`
	Title          string      `json:"title"`
	Company        string      `json:"company"`
	Location       string      `json:"location,omitempty"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
	RequiredSkills StringArray `json:"required_skills"` // JSONB array
	NiceSkills     StringArray `json:"nice_skills"`     // JSONB array
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Application represents a candidate's application to a job
type Application struct {
	ID              uuid.UUID   `json:"id"`
	JobID           uuid.UUID   `json:"job_id"`
	ApplicantID     *uuid.UUID  `json:"applicant_id,omitempty"`
	ApplicantName   string      `json:"applicant_name"`
	ApplicantEmail  string      `json:"applicant_email"`
	Skills          StringArray `json:"skills"` // normalized, JSONB array
	ResumeFile      string      `json:"resume_file,omitempty"`
	Experience      string      `json:"experience,omitempty"`
	WhyGoodFit      string      `json:"why_good_fit,omitempty"`
	Links           StringArray `json:"links"`
	Status          string      `json:"status"`
	MatchScore      int         `json:"match_score"`
	RequiredPct     int         `json:"required_pct"`
	NicePct         int         `json:"nice_pct"`
	RequiredMatches StringArray `json:"required_matches"`
	NiceMatches     StringArray `json:"nice_matches"`
	MissingRequired StringArray `json:"missing_required"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Interview represents a scheduled interview for an application
type Interview struct {
	ID             uuid.UUID `json:"id"`
	ApplicationID  uuid.UUID `json:"application_id"`
	JobID          uuid.UUID `json:"job_id"`
	RecruiterID    uuid.UUID `json:"recruiter_id"`
	ApplicantEmail string    `json:"applicant_email"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray. Malformed or
// NULL column content decodes to an empty list rather than failing the
// whole row.
func (a *StringArray) Scan(src interface{}) error {
	*a = []string{}
	if src == nil {
		return nil
	}
	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}
	var parsed []string
	if err := json.Unmarshal(source, &parsed); err != nil {
		return nil
	}
	*a = parsed
	return nil
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
