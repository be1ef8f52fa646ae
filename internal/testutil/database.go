// Package testutil provides test helpers backed by real SQLite databases.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/lumen/internal/storage"
)

// TestDB is a database file that outlives any single connection to it, so
// tests can close a session and open a fresh one over the same data.
type TestDB struct {
	t    *testing.T
	Path string
}

// NewTestDB reserves a database path in the test's temp dir.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	return &TestDB{
		t:    t,
		Path: filepath.Join(t.TempDir(), "lumen.db"),
	}
}

// Open opens and migrates a new connection. It is closed on cleanup if the
// test has not closed it already.
func (d *TestDB) Open() *storage.SQLiteStorage {
	d.t.Helper()

	store, err := storage.NewSQLiteStorage(d.Path)
	if err != nil {
		d.t.Fatalf("failed to open test database: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		d.t.Fatalf("failed to migrate test database: %v", err)
	}
	d.t.Cleanup(func() { _ = store.Close() })

	return store
}

// Seed writes raw preference values, bypassing any validation the caller would do.
func (d *TestDB) Seed(values map[string]string) {
	d.t.Helper()

	store := d.Open()
	defer func() { _ = store.Close() }()

	for key, value := range values {
		if err := store.SetPreference(context.Background(), key, value); err != nil {
			d.t.Fatalf("failed to seed %s: %v", key, err)
		}
	}
}
