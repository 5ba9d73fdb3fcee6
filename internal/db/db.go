// Package db owns connection acquisition for the employee store.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// ConfigError reports an invalid factory configuration. It is raised
// synchronously from NewFactory, never from a repository operation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Factory hands out one connection per call from a validated driver
// and connection string. Pooling underneath belongs to database/sql.
type Factory struct {
	db *sql.DB
}

// NewFactory validates the driver name and connection string and
// prepares the underlying handle. The driver must be registered with
// database/sql and the connection string must be non-blank.
func NewFactory(driver, dsn string) (*Factory, error) {
	if strings.TrimSpace(driver) == "" {
		return nil, &ConfigError{Field: "driver", Reason: "must not be blank"}
	}
	if !slices.Contains(sql.Drivers(), driver) {
		return nil, &ConfigError{Field: "driver", Reason: fmt.Sprintf("%q is not a registered database driver", driver)}
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, &ConfigError{Field: "connection string", Reason: "must not be blank"}
	}

	handle, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, &ConfigError{Field: "connection string", Reason: err.Error()}
	}

	return &Factory{db: handle}, nil
}

// Conn acquires a single connection. The caller must Close it on
// every exit path.
func (f *Factory) Conn(ctx context.Context) (*sql.Conn, error) {
	conn, err := f.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return conn, nil
}

// EnsureSchema applies the authoritative schema. Safe to call on an
// already-initialized database.
func (f *Factory) EnsureSchema(ctx context.Context) error {
	conn, err := f.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, GetSchemaSQL()); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Close releases the underlying handle.
func (f *Factory) Close() error {
	return f.db.Close()
}
