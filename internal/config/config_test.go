package config_test

import (
	"testing"
	"time"

	"boxful/internal/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "test_jwt_secret", cfg.JWTSecret)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	t.Setenv("BCRYPT_COST", "99")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "BCRYPT_COST")
}
