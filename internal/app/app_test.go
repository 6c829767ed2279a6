package app_test

import (
	"path/filepath"
	"testing"

	"go-attendance/internal/app"
	"go-attendance/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDatabase_CreatesSchema(t *testing.T) {
	cfg := config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "attendance.db"),
	}

	gormDB, sqlDB, err := app.OpenDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	for _, m := range app.Models() {
		assert.True(t, gormDB.Migrator().HasTable(m), "%T", m)
	}
	for _, table := range []string{"attendance_settings", "eod_reports", "remote_work_logs", "counters", "holidays", "outbox_events"} {
		assert.True(t, gormDB.Migrator().HasTable(table), table)
	}

	// A restart against an existing schema is a no-op.
	require.NoError(t, app.Migrate(gormDB))
}
