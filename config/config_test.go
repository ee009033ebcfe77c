package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultValues(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "SEED_DATA", "CORS_ALLOWED_ORIGINS",
		"REDIS_URL", "REDIS_PASSWORD", "RATE_LIMIT_WINDOW_SECONDS",
		"RATE_LIMIT_GLOBAL_THRESHOLD", "SHUTDOWN_TIMEOUT_SECONDS",
	} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
	assert.Equal(t, 300, cfg.RateLimitGlobalThreshold)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name:    "server",
			envVars: map[string]string{"PORT": "9090", "GIN_MODE": "release", "LOG_LEVEL": "debug"},
			expected: func(cfg *Config) {
				assert.Equal(t, "9090", cfg.Port)
				assert.Equal(t, "release", cfg.GinMode)
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		{
			name:    "seed disabled",
			envVars: map[string]string{"SEED_DATA": "false"},
			expected: func(cfg *Config) {
				assert.False(t, cfg.SeedData)
			},
		},
		{
			name:    "invalid bool keeps default",
			envVars: map[string]string{"SEED_DATA": "maybe"},
			expected: func(cfg *Config) {
				assert.True(t, cfg.SeedData)
			},
		},
		{
			name:    "origins list",
			envVars: map[string]string{"CORS_ALLOWED_ORIGINS": " https://talent.example.com/ , ,http://localhost:5173"},
			expected: func(cfg *Config) {
				assert.Equal(t, []string{"https://talent.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
			},
		},
		{
			name: "redis and rate limit",
			envVars: map[string]string{
				"REDIS_URL":                   "rediss://cache.example.com:6380",
				"REDIS_PASSWORD":              "pw",
				"RATE_LIMIT_WINDOW_SECONDS":   "10",
				"RATE_LIMIT_GLOBAL_THRESHOLD": "not-a-number",
				"SHUTDOWN_TIMEOUT_SECONDS":    "1",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "rediss://cache.example.com:6380", cfg.RedisURL)
				assert.Equal(t, "pw", cfg.RedisPassword)
				assert.Equal(t, 10*time.Second, cfg.RateLimitWindow())
				assert.Equal(t, 300, cfg.RateLimitGlobalThreshold)
				assert.Equal(t, time.Second, cfg.ShutdownTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.NoError(t, err)
			tt.expected(cfg)
		})
	}
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
