// Package sqlite_test contains integration tests for the SQLite
// employee repository.
//
// All test setup goes through setupTestFactory, which applies the
// authoritative schema via db.GetSchemaSQL(). Do not hardcode CREATE
// TABLE statements in test files; repository code referencing a column
// missing from the schema must fail here with "no such column".
package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/staffdir/internal/db"
)

// setupTestFactory creates a throwaway on-disk database with the
// authoritative schema. A file under t.TempDir() is used instead of
// :memory: because the factory hands out a fresh connection per call
// and every connection must see the same database.
func setupTestFactory(t *testing.T) *db.Factory {
	t.Helper()

	factory, err := db.NewFactory("sqlite3", filepath.Join(t.TempDir(), "staffdir.db"))
	if err != nil {
		t.Fatalf("failed to create factory: %v", err)
	}
	if err := factory.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		factory.Close()
	})

	return factory
}

// execRaw runs a raw statement against the test database, for seeding
// rows the repository itself refuses to produce.
func execRaw(t *testing.T, factory *db.Factory, query string, args ...any) {
	t.Helper()

	ctx := context.Background()
	conn, err := factory.Conn(ctx)
	if err != nil {
		t.Fatalf("failed to acquire connection: %v", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		t.Fatalf("failed to exec %q: %v", query, err)
	}
}

func strp(s string) *string {
	return &s
}

func intp(n int64) *int64 {
	return &n
}

func datep(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
