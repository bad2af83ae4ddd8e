// Package testutil builds throwaway SQLite databases with the production schema.
package testutil

import (
	"path/filepath"
	"testing"

	"casino-admin-be/internal/model"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a file backed SQLite database in t.TempDir and migrates every table.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), database.Config(true))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// NewFactory is NewDB wrapped in a repository factory.
func NewFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	db := NewDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}
