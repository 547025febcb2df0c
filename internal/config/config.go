// Package config loads and validates server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds everything the HTTP server needs to start.
type ServerConfig struct {
	Port        int
	DatabaseURL string
	UploadDir   string
	FrontendURL string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPPassword string
}

// NewServerConfig creates a server configuration from environment variables.
// It reads DATABASE_URL (required), PORT (default: 8080), UPLOAD_DIR
// (default: uploads), FRONTEND_URL and the optional SMTP_* settings.
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // default
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	config := &ServerConfig{
		Port:         port,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		UploadDir:    uploadDir,
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.SMTPHost != "" && c.SMTPFrom == "" {
		return fmt.Errorf("SMTP_FROM is required when SMTP_HOST is set")
	}
	return nil
}
