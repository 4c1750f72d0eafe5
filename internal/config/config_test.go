package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lab-booking-service/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "lab-booking-service", cfg.App.Name)
	assert.Equal(t, 168, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, 10, cfg.Auth.LoginMaxAttempts)
	assert.True(t, cfg.Database.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "24")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "booking")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_PORT", "5433")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.App.Addr())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "postgres://svc:pw@db.internal:5433/booking", cfg.Database.DSN())
}

func TestInvalidNumericFallsBack(t *testing.T) {
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 168, cfg.Auth.TokenTTLHours)
}
