package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// SchemaInspector compares the applied goose version with the newest
// embedded migration.
type SchemaInspector struct {
	provider *goose.Provider
}

// NewSchemaInspector opens a database/sql handle on pool for goose. Close
// releases it; the pool itself stays open.
func NewSchemaInspector(pool *pgxpool.Pool, migrations fs.FS) (*SchemaInspector, error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := NewMigrator(db, migrations)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SchemaInspector{provider: provider}, nil
}

// SchemaVersions returns the applied version and the newest known one.
// current < target means migrations are pending.
func (s *SchemaInspector) SchemaVersions(ctx context.Context) (current, target int64, err error) {
	current, target, err = s.provider.GetVersions(ctx)
	if err != nil {
		return current, target, fmt.Errorf("schema versions: %w", err)
	}
	return current, target, nil
}

// Close releases the database/sql handle.
func (s *SchemaInspector) Close() error {
	return s.provider.Close()
}
