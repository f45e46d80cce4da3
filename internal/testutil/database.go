// Package testutil provides shared helpers for tests that need a database.
package testutil

import (
	"context"
	"testing"

	"github.com/fintrail/fintrail/internal/classify"
	"github.com/fintrail/fintrail/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite storage seeded with the
// default category catalog. Cleanup is registered automatically.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if err := store.SeedDefaults(ctx, classify.DefaultCategories(), classify.DefaultRules()); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// SetupEmptyTestDB creates a migrated in-memory storage with no seeded
// catalog, for tests that build their own.
func SetupEmptyTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
