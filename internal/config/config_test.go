package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobmatch")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "jobmatch", cfg.App.AppName)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.DBHost)
	assert.Equal(t, "5432", cfg.Database.DBPort)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Database.RunSeeders)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5*time.Minute, cfg.Recommendation.CacheTTL)
	assert.Equal(t, 200, cfg.Recommendation.JobPool)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("DB_RUN_SEEDERS", "1")
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("LOG_FORMAT", "Console")
	t.Setenv("RECOMMENDATION_CACHE_TTL", "90s")
	t.Setenv("RECOMMENDATION_JOB_POOL", "5000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Database.RunSeeders)
	assert.Equal(t, int32(12), cfg.Database.PoolMaxConns)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 90*time.Second, cfg.Recommendation.CacheTTL)
	assert.Equal(t, 200, cfg.Recommendation.JobPool)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()

	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME, APP_ENV, JWT_ACCESS_SECRET")
}
