package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "DATABASE_DSN", "MYSQL_DSN", "TOKEN_TTL", "LOGIN_DISABLED", "LOGIN_RATE_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Contains(t, cfg.DatabaseDSN, "tcp(localhost:3306)")
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.LoginDisabled)
	assert.Equal(t, 5, cfg.LoginBurst)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("LOGIN_DISABLED", "true")
	t.Setenv("LOGIN_RATE_LIMIT", "2.5")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file::memory:", cfg.DatabaseDSN)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.LoginDisabled)
	assert.Equal(t, 2.5, cfg.LoginRateLimit)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadFallsBackToMySQLDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("MYSQL_DSN", "root@tcp(db:3306)/media")

	assert.Equal(t, "root@tcp(db:3306)/media", Load().DatabaseDSN)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("LOGIN_DISABLED", "maybe")
	t.Setenv("REDIS_DB", "x")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.LoginDisabled)
	assert.Equal(t, 0, cfg.RedisDB)
}
