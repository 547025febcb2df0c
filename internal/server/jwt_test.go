package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-board/internal/config"
	"github.com/jonathan/job-board/internal/db"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-0123456789",
		Issuer:          "job-board",
		ExpirationHours: 1,
	})
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "recruiter@example.com", db.RoleRecruiter)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "recruiter@example.com", claims.Email)
	assert.Equal(t, db.RoleRecruiter, claims.Role)
	assert.Equal(t, "job-board", claims.Issuer)
}

func TestJWT_RejectsEmptyToken(t *testing.T) {
	svc := testJWTService()
	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWT_RejectsGarbage(t *testing.T) {
	svc := testJWTService()
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	svc := testJWTService()
	token, err := svc.GenerateToken(uuid.New(), "a@b.c", db.RoleApplicant)
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:          "different-secret-xyz",
		ExpirationHours: 1,
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_ExpiresInConfiguredWindow(t *testing.T) {
	svc := testJWTService()
	token, err := svc.GenerateToken(uuid.New(), "a@b.c", db.RoleApplicant)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	expiresIn := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, expiresIn, 55*time.Minute)
	assert.LessOrEqual(t, expiresIn, time.Hour)
}
