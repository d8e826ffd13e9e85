package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-management-service/internal/infrastructure/db/gormdb"
)

func TestRun_NATSConnectFailureReturnsError(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "users.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", dbPath)
	t.Setenv("OTEL_ENDPOINT", "")
	t.Setenv("NATS_URL", "nats://127.0.0.1:1")

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")

	// The database opened before the failure is released and still usable.
	db, err := gormdb.Open(gormdb.DriverSQLite, dbPath)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&gormdb.UserModel{}))
	require.NoError(t, gormdb.Close(db))
}

func TestRun_InvalidConfigReturnsError(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
