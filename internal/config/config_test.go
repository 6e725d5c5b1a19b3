package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "STORE_DRIVER", "CATEGORY_CACHE_TTL", "SHUTDOWN_TIMEOUT", "REDIS_DB", "POSTGRES_DB"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 5*time.Minute, cfg.CategoryCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "trivia", cfg.Postgres.DBName)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CATEGORY_CACHE_TTL", "0")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Zero(t, cfg.CategoryCacheTTL)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadRejectsBadValues(t *testing.T) {

	t.Setenv("STORE_DRIVER", "sqlite")
	_, err := Load()
	assert.ErrorContains(t, err, "STORE_DRIVER")

	t.Setenv("STORE_DRIVER", "")
	t.Setenv("CATEGORY_CACHE_TTL", "soon")
	_, err = Load()
	assert.ErrorContains(t, err, "CATEGORY_CACHE_TTL")
}
