package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/job-board/internal/ingestion"
	"github.com/jonathan/job-board/internal/skills"
)

// handleListSkills returns the full skill vocabulary, store entries
// merged with the built-in seed list.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalogue.Entries(r.Context()))
}

// NormalizeRequest is the payload for POST /skills/normalize.
type NormalizeRequest struct {
	Skills skills.FlexibleList `json:"skills"`
}

// handleNormalizeSkills maps free-form skill tokens onto canonical names.
func (s *Server) handleNormalizeSkills(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	normalized := s.normalizer.NormalizeSkills(r.Context(), req.Skills)
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": normalized})
}

// handleParseResume extracts text and recognized skills from an uploaded
// resume without creating an application.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read resume")
		return
	}
	if len(data) > maxResumeSize {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "resume exceeds 10 MB")
		return
	}

	text, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	normalized := ingestion.NormalizeText(text)
	extracted := s.catalogue.Extractor(r.Context()).Extract(normalized)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"text":        normalized,
		"text_length": len(normalized),
		"filename":    header.Filename,
		"size":        len(data),
		"skills":      extracted,
	})
}
