package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaims struct {
	userID uuid.UUID
	email  string
	role   string
}

func (c *fakeClaims) GetUserID() uuid.UUID { return c.userID }
func (c *fakeClaims) GetEmail() string     { return c.email }
func (c *fakeClaims) GetRole() string      { return c.role }

type fakeValidator struct {
	claims *fakeClaims
}

func (v *fakeValidator) ValidateToken(token string) (IdentityGetter, error) {
	if token != "valid-token" {
		return nil, errors.New("invalid token")
	}
	return v.claims, nil
}

func newTestHandler(t *testing.T) (http.Handler, *Identity) {
	t.Helper()
	captured := &Identity{}
	validator := &fakeValidator{claims: &fakeClaims{
		userID: uuid.New(),
		email:  "r@example.com",
		role:   "recruiter",
	}}
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := GetIdentity(r)
		require.NoError(t, err)
		*captured = identity
		w.WriteHeader(http.StatusOK)
	}))
	return handler, captured
}

func TestAuth_ValidToken(t *testing.T) {
	handler, captured := newTestHandler(t)

	req := httptest.NewRequest("GET", "/my/jobs", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "r@example.com", captured.Email)
	assert.Equal(t, "recruiter", captured.Role)
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/my/jobs", nil)
	req.Header.Set("Authorization", "bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Rejections(t *testing.T) {
	handler, _ := newTestHandler(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"bad token", "Bearer wrong-token"},
		{"bearer only", "Bearer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/my/jobs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole("recruiter")(next)

	// Matching role passes.
	req := httptest.NewRequest("POST", "/jobs", nil)
	req = req.WithContext(WithIdentity(req.Context(), Identity{Role: "recruiter"}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong role is forbidden.
	req = httptest.NewRequest("POST", "/jobs", nil)
	req = req.WithContext(WithIdentity(req.Context(), Identity{Role: "applicant"}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No identity at all is forbidden.
	req = httptest.NewRequest("POST", "/jobs", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetIdentity_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetIdentity(req)
	assert.Error(t, err)
}
