// Package storetest opens throwaway stores for tests.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vehicle_rental/internal/store/sqlstore"
)

// NewSQLite returns a migrated store on a private in-memory sqlite database.
func NewSQLite(t testing.TB) *sqlstore.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)

	s, err := sqlstore.New(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return s
}
