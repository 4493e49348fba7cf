package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory database that is closed at the end
// of the test. Every connection in the pool sees its own empty database,
// so use NewFileTestDB when goroutines need to share rows.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening in-memory test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewFileTestDB opens a migrated database file under t.TempDir(). The file
// is shared by the whole pool, which is what the WAL concurrency tests and
// the serve-while-tracking tests need.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "focusflow.db")
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening file test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// CountActivities reads the row count straight from the table, bypassing
// the repository.
func CountActivities(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&n))
	return n
}
