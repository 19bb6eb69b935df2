package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "local", cfg.Storage.Provider)
	assert.EqualValues(t, 5<<20, cfg.Upload.MaxBytes)
	assert.Equal(t, "movie.activity", cfg.AMQP.Queue)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 60, cfg.RateLimit.Capacity)
	assert.Equal(t, DefaultAllowedOrigins, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RABBITMQ_URL", "amqp://user:pw@broker:5672/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1, cfg.RateLimit.Capacity, "capacity is clamped")
	assert.Equal(t, "amqp://user:pw@broker:5672/", cfg.AMQP.URL)
}

func TestLoadNodeEnvFallback(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("JWT_SECRET", "x")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing secret":    {"APP_ENV": "production"},
		"unknown driver":    {"APP_ENV": "development", "DB_DRIVER": "oracle"},
		"unknown storage":   {"APP_ENV": "development", "STORAGE_PROVIDER": "ftp"},
		"s3 without bucket": {"APP_ENV": "development", "STORAGE_PROVIDER": "s3"},
		"zero expiry":       {"APP_ENV": "development", "JWT_EXPIRES_IN": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestRateLimitNormalize(t *testing.T) {
	c := RateLimitConfig{RefillInterval: 0, TTL: time.Second}.normalize()
	assert.Equal(t, 1, c.Capacity)
	assert.Equal(t, 1, c.RefillTokens)
	assert.Equal(t, time.Second, c.RefillInterval)
	assert.Equal(t, 5*time.Second, c.TTL)
}

func TestNewRedisClientDisabled(t *testing.T) {
	assert.Nil(t, NewRedisClient(RedisConfig{Enabled: false}))
}
