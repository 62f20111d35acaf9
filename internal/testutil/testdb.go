package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/ozpath/internal/db"
	"github.com/alexanderramin/ozpath/internal/kv"
)

// NewTestDB opens a migrated in-memory database closed at test end.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestSQLiteStore returns a SQLite-backed store and its transactor.
func NewTestSQLiteStore(t *testing.T) (kv.Store, kv.Transactor) {
	t.Helper()
	database := NewTestDB(t)
	return kv.NewSQLiteStore(database), kv.NewSQLiteTransactor(db.NewSQLiteUnitOfWork(database))
}
