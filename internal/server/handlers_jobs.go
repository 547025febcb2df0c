package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/job-board/internal/db"
	"github.com/jonathan/job-board/internal/server/middleware"
	"github.com/jonathan/job-board/internal/skills"
)

// JobRequest is the payload for creating or updating a job posting.
// Skill lists accept arrays, JSON-encoded strings or CSV.
type JobRequest struct {
	Title          string              `json:"title" validate:"required,min=2,max=200"`
	Company        string              `json:"company" validate:"required,min=1,max=200"`
	Location       string              `json:"location" validate:"max=200"`
	Description    string              `json:"description" validate:"max=20000"`
	Category       string              `json:"category" validate:"max=100"`
	RequiredSkills skills.FlexibleList `json:"required_skills"`
	NiceSkills     skills.FlexibleList `json:"nice_skills"`
}

// handleCreateJob creates a job posting for the authenticated recruiter.
// Skills are normalized to canonical names and unknown ones are added to
// the catalogue under the job's category.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	input, ok := s.decodeJobRequest(w, r, identity.UserID)
	if !ok {
		return
	}

	job, err := s.db.CreateJob(r.Context(), input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleUpdateJob overwrites a posting owned by the authenticated recruiter.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	input, ok := s.decodeJobRequest(w, r, identity.UserID)
	if !ok {
		return
	}

	job, err := s.db.UpdateJob(r.Context(), id, identity.UserID, input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// decodeJobRequest parses, validates and normalizes a job payload.
func (s *Server) decodeJobRequest(w http.ResponseWriter, r *http.Request, recruiterID uuid.UUID) (*db.JobCreateInput, bool) {
	var req JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return nil, false
	}

	category := req.Category
	if category == "" {
		category = skills.InferCategory(req.Title)
	}

	ctx := r.Context()
	required := s.normalizer.NormalizeSkills(ctx, req.RequiredSkills)
	nice := s.normalizer.NormalizeSkills(ctx, req.NiceSkills)

	// Grow the vocabulary with whatever the recruiter typed; known names
	// are upsert no-ops.
	s.catalogue.Add(ctx, append(append([]string{}, required...), nice...), category)

	return &db.JobCreateInput{
		RecruiterID:    recruiterID,
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		Category:       category,
		RequiredSkills: required,
		NiceSkills:     nice,
	}, true
}

// handleGetJob returns a single posting.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJobByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleListJobs returns postings, optionally filtered by category and a
// title/company search term.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	filters := db.JobFilters{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filters.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		filters.Offset, _ = strconv.Atoi(v)
	}

	jobs, err := s.db.ListJobs(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}

	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleListMyJobs returns the authenticated recruiter's postings.
func (s *Server) handleListMyJobs(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := s.db.ListJobsByRecruiter(r.Context(), identity.UserID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}

	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleDeleteJob removes a posting owned by the authenticated recruiter.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := s.db.DeleteJob(r.Context(), id, identity.UserID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListCategories returns the categories currently in use.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.db.ListCategories(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list categories")
		return
	}
	s.jsonResponse(w, http.StatusOK, categories)
}
