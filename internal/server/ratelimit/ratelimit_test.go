package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig(limit int) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  limit,
		DefaultWindow: time.Minute,
	}
}

func TestLimiter_AllowsWithinLimit(t *testing.T) {
	l := NewLimiter(testConfig(5))
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/jobs", "GET")
		assert.True(t, allowed, "request %d", i)
	}
}

func TestLimiter_BlocksOverLimit(t *testing.T) {
	l := NewLimiter(testConfig(2))
	defer l.Stop()

	l.Allow("1.2.3.4", "/jobs", "GET")
	l.Allow("1.2.3.4", "/jobs", "GET")

	allowed, info := l.Allow("1.2.3.4", "/jobs", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig(1))
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/jobs", "GET")
	assert.True(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/jobs", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/jobs", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_EndpointOverride(t *testing.T) {
	config := testConfig(100)
	config.Endpoints = []EndpointLimit{
		{PathPrefix: "/auth/login", Method: "POST", Limit: 1, Window: time.Minute},
		{PathPrefix: "/health", Limit: 0},
	}
	l := NewLimiter(config)
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/auth/login", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/auth/login", "POST")
	assert.False(t, allowed)

	// Unlimited endpoint never blocks.
	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestConfig_LimitFor(t *testing.T) {
	config := defaultConfig()

	limit, _ := config.limitFor("/auth/login", "POST")
	assert.Equal(t, 10, limit)

	// GET on the login path falls through to the default.
	limit, _ = config.limitFor("/auth/login", "GET")
	assert.Equal(t, config.DefaultLimit, limit)

	limit, _ = config.limitFor("/health", "GET")
	assert.Equal(t, 0, limit)

	limit, window := config.limitFor("/jobs", "GET")
	assert.Equal(t, config.DefaultLimit, limit)
	assert.Equal(t, config.DefaultWindow, window)
}
