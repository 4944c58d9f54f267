package testutils

import (
	"fmt"
	"testing"

	"studybuddy-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a migrated in-memory database private to the calling test.
// The pool holds a single connection, so code under test must not use the root
// handle while it holds a transaction.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{
		Driver:   "sqlite",
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// MustCreate persists every value or fails the test
func MustCreate(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, db.Create(v).Error)
	}
}
