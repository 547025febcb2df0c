package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-board/internal/db"
	"github.com/jonathan/job-board/internal/email"
	"github.com/jonathan/job-board/internal/server/middleware"
)

// handleListSlots returns the free interview slots for the recruiter
// behind an application, on a given ?date=YYYY-MM-DD.
func (s *Server) handleListSlots(w http.ResponseWriter, r *http.Request) {
	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	day, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	_, job, ok := s.loadApplicationWithJob(w, r, appID)
	if !ok {
		return
	}

	slots, err := s.db.AvailableSlots(r.Context(), job.RecruiterID, day)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load slots")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"date":  day.Format("2006-01-02"),
		"slots": slots,
	})
}

// ScheduleRequest is the payload for booking an interview slot.
type ScheduleRequest struct {
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
	Notes string `json:"notes" validate:"max=2000"`
}

// handleScheduleInterview books an interview for an accepted application.
// The endpoint is keyed by application ID so applicants can book straight
// from the acceptance email.
func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	scheduledAt, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.Time)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD and time HH:MM")
		return
	}

	app, job, ok := s.loadApplicationWithJob(w, r, appID)
	if !ok {
		return
	}
	if app.Status != db.ApplicationAccepted {
		s.errorResponse(w, http.StatusConflict, "only accepted applications can book an interview")
		return
	}

	ctx := r.Context()
	if existing, err := s.db.GetInterviewByApplication(ctx, appID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to check interview")
		return
	} else if existing != nil {
		s.errorResponse(w, http.StatusConflict, "an interview is already scheduled for this application")
		return
	}

	if !slotAvailable(scheduledAt) {
		s.errorResponse(w, http.StatusBadRequest, "time must be a full hour between 09:00 and 17:00")
		return
	}
	free, err := s.db.AvailableSlots(ctx, job.RecruiterID, scheduledAt)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load slots")
		return
	}
	if !containsSlot(free, scheduledAt.Format("15:04")) {
		s.errorResponse(w, http.StatusConflict, "slot is already taken")
		return
	}

	iv, err := s.db.CreateInterview(ctx, &db.InterviewCreateInput{
		ApplicationID:  appID,
		JobID:          job.ID,
		RecruiterID:    job.RecruiterID,
		ApplicantEmail: app.ApplicantEmail,
		ScheduledAt:    scheduledAt,
		Notes:          req.Notes,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to schedule interview")
		return
	}

	s.notifyInterviewBooked(app, job, iv)
	s.jsonResponse(w, http.StatusCreated, iv)
}

// slotAvailable reports whether a time lands on the hourly working-day grid.
func slotAvailable(t time.Time) bool {
	if t.Minute() != 0 {
		return false
	}
	return t.Hour() >= 9 && t.Hour() <= 17
}

func containsSlot(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}

// notifyInterviewBooked sends the confirmation email. Delivery is
// best-effort.
func (s *Server) notifyInterviewBooked(app *db.Application, job *db.Job, iv *db.Interview) {
	subject, body := email.ConfirmationMessage(email.Confirmation{
		ApplicantName: app.ApplicantName,
		JobTitle:      job.Title,
		Company:       job.Company,
		ScheduledAt:   iv.ScheduledAt,
		Notes:         iv.Notes,
	})
	if err := s.mailer.Send(app.ApplicantEmail, subject, body); err != nil {
		log.Printf("confirmation email to %s failed: %v", app.ApplicantEmail, err)
	}
}

// loadApplicationWithJob fetches an application and its job, writing the
// error response when either is missing.
func (s *Server) loadApplicationWithJob(w http.ResponseWriter, r *http.Request, appID uuid.UUID) (*db.Application, *db.Job, bool) {
	ctx := r.Context()

	app, err := s.db.GetApplicationByID(ctx, appID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load application")
		return nil, nil, false
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return nil, nil, false
	}

	job, err := s.db.GetJobByID(ctx, app.JobID)
	if err != nil || job == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load job")
		return nil, nil, false
	}

	return app, job, true
}

// handleListMyInterviews returns the caller's interviews. Recruiters see
// interviews they host; applicants see interviews booked with their email.
func (s *Server) handleListMyInterviews(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var interviews []db.Interview
	if identity.Role == db.RoleRecruiter {
		interviews, err = s.db.ListInterviewsByRecruiter(r.Context(), identity.UserID)
	} else {
		interviews, err = s.db.ListInterviewsByEmail(r.Context(), identity.Email)
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list interviews")
		return
	}

	s.jsonResponse(w, http.StatusOK, interviews)
}

// InterviewStatusRequest is the payload for an interview status change.
type InterviewStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// handleUpdateInterviewStatus lets the hosting recruiter complete or
// cancel an interview.
func (s *Server) handleUpdateInterviewStatus(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	var req InterviewStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	ctx := r.Context()
	iv, err := s.db.GetInterviewByID(ctx, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load interview")
		return
	}
	if iv == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}
	if iv.RecruiterID != identity.UserID {
		s.errorResponse(w, http.StatusForbidden, "you do not have access to this resource")
		return
	}

	updated, err := s.db.UpdateInterviewStatus(ctx, id, req.Status)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update interview")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}
