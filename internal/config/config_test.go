package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
	assert.Equal(t, 24, cfg.Redis.ReportTTLHours)

	assert.Equal(t, 4096, cfg.Ephemeris.CacheSize)
	assert.Equal(t, "PLACIDUS", cfg.Calculation.DefaultHouseSystem)
	assert.Equal(t, "LAHIRI", cfg.Calculation.DefaultAyanamsa)
	assert.Equal(t, 2, cfg.Calculation.DefaultDashaDepth)
	assert.Equal(t, 2, cfg.Calculation.DefaultKPSubDepth)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "astro-engine", cfg.Telemetry.ServiceName)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "PRODUCTION")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("CALCULATION_DEFAULT_HOUSE_SYSTEM", "EQUAL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Environment, "environment is lowercased")
	assert.Equal(t, "redis.internal:6379", cfg.Redis.RedisAddr())
	assert.Equal(t, "EQUAL", cfg.Calculation.DefaultHouseSystem)
}

func TestLoadValidation(t *testing.T) {
	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative cache size", func(t *testing.T) {
		t.Setenv("EPHEMERIS_CACHE_SIZE", "-1")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero report ttl", func(t *testing.T) {
		t.Setenv("REDIS_REPORT_TTL_HOURS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
