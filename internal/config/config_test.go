package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobboard")
	t.Setenv("PORT", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestNewServerConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := NewServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewServerConfig_InvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobboard")
	t.Setenv("PORT", "not-a-port")

	_, err := NewServerConfig()
	assert.Error(t, err)
}

func TestNewServerConfig_SMTPNeedsFrom(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobboard")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "")

	_, err := NewServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_FROM")
}
