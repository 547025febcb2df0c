package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointLimit overrides the default limit for a path prefix.
type EndpointLimit struct {
	PathPrefix string
	Method     string // empty matches any method
	Limit      int    // 0 disables limiting for the endpoint
	Window     time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointLimit
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints: []EndpointLimit{
			// Credential endpoints are limited more tightly than the rest of the API.
			{PathPrefix: "/auth/login", Method: "POST", Limit: 10, Window: time.Minute},
			{PathPrefix: "/auth/register", Method: "POST", Limit: 10, Window: time.Minute},
			// Health checks are unlimited.
			{PathPrefix: "/health", Limit: 0},
		},
	}
}

// LoadConfig builds the limiter configuration from environment variables.
// It reads RATE_LIMIT_ENABLED (default: true), RATE_LIMIT_DEFAULT
// (default: 300) and RATE_LIMIT_WINDOW_SECONDS (default: 60).
func LoadConfig() *Config {
	config := defaultConfig()

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		config.Enabled = v != "false" && v != "0"
	}
	if v := os.Getenv("RATE_LIMIT_DEFAULT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			config.DefaultLimit = limit
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			config.DefaultWindow = time.Duration(seconds) * time.Second
		}
	}

	return config
}

// limitFor returns the limit and window applying to an endpoint. The first
// matching override wins; otherwise the defaults apply.
func (c *Config) limitFor(endpoint, method string) (int, time.Duration) {
	for _, e := range c.Endpoints {
		if !strings.HasPrefix(endpoint, e.PathPrefix) {
			continue
		}
		if e.Method != "" && e.Method != method {
			continue
		}
		window := e.Window
		if window <= 0 {
			window = c.DefaultWindow
		}
		return e.Limit, window
	}
	return c.DefaultLimit, c.DefaultWindow
}
