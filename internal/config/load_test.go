package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JOBBOARD_DATABASE_URL", "postgres://localhost:5432/jobboard_test")
	t.Setenv("JOBBOARD_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.False(t, cfg.Server.IsProduction())
	assert.Equal(t, 24*60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 10, cfg.Auth.BCryptCost)
	assert.Equal(t, 2, cfg.Pagination.JobPageSize)
	assert.Equal(t, 12, cfg.Pagination.CompanyListLimit)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JOBBOARD_SERVER_PORT", "9090")
	t.Setenv("JOBBOARD_SERVER_ENV", "production")
	t.Setenv("JOBBOARD_PAGINATION_JOB_PAGE_SIZE", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, 10, cfg.Pagination.JobPageSize)
}

func TestLoad_ValidationFailures(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("JOBBOARD_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short jwt secret", func(t *testing.T) {
		t.Setenv("JOBBOARD_DATABASE_URL", "postgres://localhost:5432/jobboard_test")
		t.Setenv("JOBBOARD_AUTH_JWT_SECRET", "short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid environment name", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JOBBOARD_SERVER_ENV", "staging")

		_, err := Load()
		assert.Error(t, err)
	})
}
