package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/creatorpro_test")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("SESSION_TTL_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Session.Backend)
	assert.Equal(t, 168*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestLoadRejectsUnknownSessionStore(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/creatorpro_test")
	t.Setenv("SESSION_STORE", "memcached")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_STORE")
}

func TestLoadRedisBackend(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/creatorpro_test")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("SESSION_TTL_HOURS", "24")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Session.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}
