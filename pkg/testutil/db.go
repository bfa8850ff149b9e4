// Package testutil opens throw-away databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"mycolab/database"
)

// OpenDB returns a migrated SQLite database living in t.TempDir().
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
