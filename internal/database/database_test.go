package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		User:     "hashitup",
		Password: "secret",
		DBName:   "hashitup",
		Port:     "5433",
		SSLMode:  "require",
		TimeZone: "UTC",
	}

	dsn := BuildDSN(cfg)

	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "user=hashitup")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfigFromEnv()

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, "hashitup", cfg.DBName)
		assert.Equal(t, "disable", cfg.SSLMode)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "pg.internal")
		t.Setenv("DB_NAME", "portal")

		cfg := LoadConfigFromEnv()

		assert.Equal(t, "pg.internal", cfg.Host)
		assert.Equal(t, "portal", cfg.DBName)
	})
}

func TestSanitizeError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, Config{}))
	})

	t.Run("password is masked", func(t *testing.T) {
		cfg := Config{Password: "hunter2"}
		err := SanitizeError(assert.AnError, cfg)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "hunter2")
	})
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("nil database", func(t *testing.T) {
		assert.Error(t, HealthCheck(ctx, nil))
	})

	t.Run("open connection", func(t *testing.T) {
		db := openSQLite(t)
		assert.NoError(t, HealthCheck(ctx, db))
	})

	t.Run("closed connection", func(t *testing.T) {
		db := openSQLite(t)
		require.NoError(t, Close(db))
		assert.Error(t, HealthCheck(ctx, db))
	})
}

func TestClose(t *testing.T) {
	t.Run("nil database is a no-op", func(t *testing.T) {
		assert.NoError(t, Close(nil))
	})

	t.Run("closes open connection", func(t *testing.T) {
		db := openSQLite(t)
		assert.NoError(t, Close(db))
	})
}

func TestSetupConnectionPool(t *testing.T) {
	t.Run("applies valid config", func(t *testing.T) {
		db := openSQLite(t)
		cfg := PoolConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Minute,
			ConnMaxIdleTime: time.Minute,
		}

		require.NoError(t, SetupConnectionPool(db, cfg))

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("rejects zero max open conns", func(t *testing.T) {
		db := openSQLite(t)
		cfg := DefaultPoolConfig()
		cfg.MaxOpenConns = 0

		assert.Error(t, SetupConnectionPool(db, cfg))
	})

	t.Run("rejects idle greater than open", func(t *testing.T) {
		db := openSQLite(t)
		cfg := DefaultPoolConfig()
		cfg.MaxOpenConns = 2
		cfg.MaxIdleConns = 5

		assert.Error(t, SetupConnectionPool(db, cfg))
	})
}

func TestMigrate(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		assert.Error(t, Migrate(nil))
	})

	t.Run("missing migrations directory", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "does/not/exist")
		db := openSQLite(t)

		err := Migrate(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}
