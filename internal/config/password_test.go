package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_MIN_LENGTH", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 8, cfg.MinLength)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")
	_, err := NewPasswordConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "20")
	_, err = NewPasswordConfig()
	assert.Error(t, err)
}

func TestValidateStrength(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10, MinLength: 8}

	assert.Error(t, cfg.ValidateStrength("short"))
	assert.NoError(t, cfg.ValidateStrength("longenough"))
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10, MinLength: 8}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestHashAndVerifyPassword_WithPepper(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10, MinLength: 8, Pepper: "global-secret"}

	hash, err := cfg.HashPassword("hunter22")
	require.NoError(t, err)

	assert.True(t, cfg.VerifyPassword("hunter22", hash))

	// A config without the pepper cannot verify the hash.
	plain := &PasswordConfig{BcryptCost: 10, MinLength: 8}
	assert.False(t, plain.VerifyPassword("hunter22", hash))
}
