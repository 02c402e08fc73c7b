package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studentdash/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBDriver:       config.DriverSQLite,
		DBPath:         filepath.Join(t.TempDir(), "data", "students.db"),
		DBMaxOpenConns: 4,
		LogLevel:       "silent",
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })
	return db
}
