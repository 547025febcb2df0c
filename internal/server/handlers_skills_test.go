package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-board/internal/catalogue"
	"github.com/jonathan/job-board/internal/email"
	"github.com/jonathan/job-board/internal/skills"
)

// newTestServer builds a server with the static catalogue and no database.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	cat := catalogue.New(nil)
	return &Server{
		catalogue:  cat,
		normalizer: skills.NewNormalizer(cat),
		mailer:     email.NewSender(email.Config{}),
		validate:   validator.New(),
		uploadDir:  t.TempDir(),
	}
}

func TestHandleNormalizeSkills(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"skills": ["js", "Englisch", "englisch", "Made Up Skill"]}`)
	req := httptest.NewRequest("POST", "/skills/normalize", body)
	rec := httptest.NewRecorder()
	s.handleNormalizeSkills(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"JavaScript", "English", "Made Up Skill"}, resp.Skills)
}

func TestHandleNormalizeSkills_CSVString(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"skills": "react.js, node js, docker"}`)
	req := httptest.NewRequest("POST", "/skills/normalize", body)
	rec := httptest.NewRecorder()
	s.handleNormalizeSkills(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"React", "Node.js", "Docker"}, resp.Skills)
}

func TestHandleNormalizeSkills_BadBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("POST", "/skills/normalize", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	s.handleNormalizeSkills(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListSkills(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/skills", nil)
	rec := httptest.NewRecorder()
	s.handleListSkills(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []catalogue.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.NotEmpty(t, entries)
}

func multipartResume(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleParseResume_Text(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartResume(t, "cv.txt",
		"Experienced with React.js and Node js\n• Docker • Kubernetes")
	req := httptest.NewRequest("POST", "/resumes/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.handleParseResume(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Text       string   `json:"text"`
		TextLength int      `json:"text_length"`
		Filename   string   `json:"filename"`
		Size       int      `json:"size"`
		Skills     []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Text, "\n")
	assert.Equal(t, len(resp.Text), resp.TextLength)
	assert.Equal(t, "cv.txt", resp.Filename)
	assert.Positive(t, resp.Size)
	assert.Contains(t, resp.Skills, "React")
	assert.Contains(t, resp.Skills, "Node.js")
	assert.Contains(t, resp.Skills, "Docker")
	assert.Contains(t, resp.Skills, "Kubernetes")
}

func TestHandleParseResume_UnsupportedType(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartResume(t, "cv.png", "not a resume")
	req := httptest.NewRequest("POST", "/resumes/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.handleParseResume(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleParseResume_MissingFile(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Ada"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/resumes/parse", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.handleParseResume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
