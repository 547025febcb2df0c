package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-board/internal/db"
	"github.com/jonathan/job-board/internal/email"
	"github.com/jonathan/job-board/internal/ingestion"
	"github.com/jonathan/job-board/internal/matching"
	"github.com/jonathan/job-board/internal/server/middleware"
	"github.com/jonathan/job-board/internal/skills"
)

// Uploaded resumes are capped at 10 MB.
const maxResumeSize = 10 << 20

// ApplyRequest is the payload for a manual (skills-typed-in) application.
type ApplyRequest struct {
	Name       string              `json:"name" validate:"required,min=2,max=100"`
	Email      string              `json:"email" validate:"required,email"`
	Skills     skills.FlexibleList `json:"skills"`
	Experience string              `json:"experience" validate:"max=200"`
	WhyGoodFit string              `json:"why_good_fit" validate:"max=2000"`
	Links      []string            `json:"links" validate:"max=10,dive,max=300"`
}

// handleApply creates an application from a typed-in skill list.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	normalized := s.normalizer.NormalizeSkills(r.Context(), req.Skills)
	s.createApplication(w, r, &db.ApplicationCreateInput{
		JobID:          jobID,
		ApplicantName:  req.Name,
		ApplicantEmail: req.Email,
		Skills:         normalized,
		Experience:     req.Experience,
		WhyGoodFit:     req.WhyGoodFit,
		Links:          req.Links,
	})
}

// handleApplyWithFile creates an application from an uploaded resume.
// The resume text is extracted and skills are matched against the
// catalogue while the job is loaded in parallel.
func (s *Server) handleApplyWithFile(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	name, mail, data, filename, ok := s.readResumeUpload(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	var extracted []string
	var storedFile string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := ingestion.ExtractText(filename, data)
		if err != nil {
			return err
		}
		extracted = s.catalogue.Extractor(gctx).Extract(ingestion.NormalizeText(text))
		return nil
	})
	g.Go(func() error {
		stored, err := s.storeResume(filename, data)
		if err != nil {
			return err
		}
		storedFile = stored
		return nil
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.createApplication(w, r, &db.ApplicationCreateInput{
		JobID:          jobID,
		ApplicantName:  name,
		ApplicantEmail: mail,
		Skills:         extracted,
		ResumeFile:     storedFile,
	})
}

// readResumeUpload pulls the applicant fields and resume file out of a
// multipart form.
func (s *Server) readResumeUpload(w http.ResponseWriter, r *http.Request) (name, mail string, data []byte, filename string, ok bool) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	name = strings.TrimSpace(r.FormValue("name"))
	mail = strings.TrimSpace(r.FormValue("email"))
	if name == "" || mail == "" {
		s.errorResponse(w, http.StatusBadRequest, "name and email are required")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	data, err = io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read resume")
		return
	}
	if len(data) > maxResumeSize {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "resume exceeds 10 MB")
		return
	}

	return name, mail, data, header.Filename, true
}

// storeResume writes an uploaded resume under the upload directory with a
// random name, keeping the original extension.
func (s *Server) storeResume(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	stored := uuid.NewString() + ext
	path := filepath.Join(s.uploadDir, stored)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store resume: %w", err)
	}
	return stored, nil
}

// createApplication scores the candidate against the job and persists the
// application. Duplicate applications per job and email are rejected.
func (s *Server) createApplication(w http.ResponseWriter, r *http.Request, input *db.ApplicationCreateInput) {
	ctx := r.Context()

	job, err := s.db.GetJobByID(ctx, input.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load job")
		return
	}
	if job == nil || !job.IsActive {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	exists, err := s.db.HasApplication(ctx, input.JobID, input.ApplicantEmail)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to check application")
		return
	}
	if exists {
		dupErr := &ErrDuplicateApplication{Email: input.ApplicantEmail}
		s.errorResponse(w, HTTPStatus(dupErr), dupErr.Error())
		return
	}

	if identity, err := middleware.GetIdentity(r); err == nil {
		input.ApplicantID = &identity.UserID
	}

	result := matching.Compute(job.RequiredSkills, job.NiceSkills, input.Skills)
	input.MatchScore = result.Score
	input.RequiredPct = result.RequiredPct
	input.NicePct = result.NicePct
	input.RequiredMatches = result.RequiredMatches
	input.NiceMatches = result.NiceMatches
	input.MissingRequired = result.MissingRequired

	app, err := s.db.CreateApplication(ctx, input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, app)
}

// handleGetApplication returns an application with the basic job facts
// the booking page needs. The route is public, keyed by application ID,
// so accepted applicants can open it from the email link.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, job, ok := s.loadApplicationWithJob(w, r, appID)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"application": app,
		"job_title":   job.Title,
		"company":     job.Company,
	})
}

// handleDownloadResume streams a stored resume to the recruiter who owns
// the job it was submitted for.
func (s *Server) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, job, ok := s.loadApplicationWithJob(w, r, appID)
	if !ok {
		return
	}
	if job.RecruiterID != identity.UserID {
		s.errorResponse(w, http.StatusForbidden, "you do not have access to this resource")
		return
	}
	if app.ResumeFile == "" {
		s.errorResponse(w, http.StatusNotFound, "No resume file available")
		return
	}

	path := filepath.Join(s.uploadDir, filepath.Base(app.ResumeFile))
	if _, err := os.Stat(path); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Resume file is missing")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", app.ResumeFile))
	http.ServeFile(w, r, path)
}

// handleListJobApplications returns a job's applications to its owner,
// best match first.
func (s *Server) handleListJobApplications(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJobByID(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	if job.RecruiterID != identity.UserID {
		s.errorResponse(w, http.StatusForbidden, "you do not have access to this resource")
		return
	}

	apps, err := s.db.ListApplicationsByJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, apps)
}

// handleListMyApplications returns the caller's applications. Recruiters
// see applications across their jobs; applicants see their own.
func (s *Server) handleListMyApplications(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var apps []db.Application
	if identity.Role == db.RoleRecruiter {
		apps, err = s.db.ListApplicationsByRecruiter(r.Context(), identity.UserID)
	} else {
		apps, err = s.db.ListApplicationsByEmail(r.Context(), identity.Email)
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, apps)
}

// StatusRequest is the payload for an application decision.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected pending"`
}

// handleUpdateApplicationStatus records a decision and notifies the
// applicant by email. Accepted applicants get an interview-booking link.
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	ctx := r.Context()
	app, err := s.db.GetApplicationByID(ctx, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load application")
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	job, err := s.db.GetJobByID(ctx, app.JobID)
	if err != nil || job == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load job")
		return
	}
	if job.RecruiterID != identity.UserID {
		s.errorResponse(w, http.StatusForbidden, "you do not have access to this resource")
		return
	}

	updated, err := s.db.UpdateApplicationStatus(ctx, id, req.Status)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	if req.Status == db.ApplicationAccepted || req.Status == db.ApplicationRejected {
		s.notifyStatusChange(updated, job, req.Status)
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// notifyStatusChange sends the decision email. Delivery is best-effort.
func (s *Server) notifyStatusChange(app *db.Application, job *db.Job, status string) {
	var scheduleURL string
	if status == db.ApplicationAccepted && s.frontendURL != "" {
		scheduleURL = fmt.Sprintf("%s/schedule-interview/%s", s.frontendURL, app.ID)
	}

	subject, body := email.StatusMessage(email.StatusUpdate{
		ApplicantName: app.ApplicantName,
		JobTitle:      job.Title,
		Company:       job.Company,
		Status:        status,
		ScheduleURL:   scheduleURL,
	})
	if err := s.mailer.Send(app.ApplicantEmail, subject, body); err != nil {
		log.Printf("status email to %s failed: %v", app.ApplicantEmail, err)
	}
}
