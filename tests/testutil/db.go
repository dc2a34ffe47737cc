// Package testutil holds the database fixtures shared by repository tests:
// an in-memory sqlite database with the schema auto-migrated, and a
// sqlmock-backed gorm handle for asserting on generated SQL.
package testutil

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenSQLite opens an in-memory sqlite database and migrates the given
// models into it. The database vanishes with the test.
func OpenSQLite(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...), "migrate models")
	}
	return db
}

// OpenSQLMock returns a gorm handle whose every statement runs against a
// sqlmock connection. Unmet expectations fail the test during cleanup.
func OpenSQLMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err, "create sqlmock")

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:       conn,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err, "open gorm over sqlmock")

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet(), "unmet SQL expectations")
		_ = conn.Close()
	})
	return db, mock
}
