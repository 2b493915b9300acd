package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/config"
	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/services"
)

func TestStorageType(t *testing.T) {
	assert.Equal(t, db.StorageTypePostgres, storageType(&config.Config{DatabaseDSN: "postgres://x", SQLitePath: "a.db"}))
	assert.Equal(t, db.StorageTypeSQLite, storageType(&config.Config{SQLitePath: "a.db"}))
	assert.Equal(t, db.StorageTypeInMemory, storageType(&config.Config{}))
}

func TestAccessMode(t *testing.T) {
	assert.Equal(t, services.AccessModeAsync, accessMode(config.AccessLogModeAsync))
	assert.Equal(t, services.AccessModeSync, accessMode(config.AccessLogModeSync))
	assert.Equal(t, services.AccessModeSync, accessMode(""))
}

func TestNew_InMemory(t *testing.T) {
	a, err := New(config.Config{
		ServerAddress:    "localhost:0",
		JWTSecret:        "secret",
		ResetSchedule:    config.DefaultResetSchedule,
		AccessLogMode:    config.AccessLogModeAsync,
		JWTTTL:           config.DefaultJWTTTL,
		AccessLogWorkers: 2,
		AccessLogQueue:   8,
		SlugMaxAttempts:  config.DefaultSlugMaxAttempts,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.storage.Close() })

	assert.Equal(t, db.StorageTypeInMemory, a.storage.Type)
	assert.NotNil(t, a.services.AsyncRecorder)
	assert.NotNil(t, a.server.Handler)
}

func TestTLSHosts(t *testing.T) {
	assert.Equal(t, []string{"localhost", "127.0.0.1", "::1", "sho.rt"}, tlsHosts("https://sho.rt"))
	assert.Equal(t, []string{"localhost", "127.0.0.1", "::1"}, tlsHosts("http://localhost:8080"))
	assert.Equal(t, []string{"localhost", "127.0.0.1", "::1"}, tlsHosts(""))
}
