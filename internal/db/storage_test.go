package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectionFactory(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		s, err := NewConnectionFactory(t.Context(), FactoryConfig{StorageType: StorageTypeInMemory})
		require.NoError(t, err)
		assert.NotNil(t, s.Memory)
		assert.Nil(t, s.SQL)
		assert.NoError(t, s.Ping(t.Context()))
		assert.NoError(t, s.Close())
	})

	t.Run("sqlite", func(t *testing.T) {
		s, err := NewConnectionFactory(t.Context(), FactoryConfig{
			StorageType:  StorageTypeSQLite,
			SQLiteDBPath: filepath.Join(t.TempDir(), "links.db"),
		})
		require.NoError(t, err)
		assert.NotNil(t, s.SQL)
		assert.NoError(t, s.Ping(t.Context()))
		assert.True(t, s.SQL.Migrator().HasTable("links"))
		assert.True(t, s.SQL.Migrator().HasIndex("links", "idx_links_slug"))
		assert.NoError(t, s.Close())
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		_, err := NewConnectionFactory(t.Context(), FactoryConfig{StorageType: StorageTypePostgres})
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewConnectionFactory(t.Context(), FactoryConfig{StorageType: "mongo"})
		assert.Error(t, err)
	})
}
