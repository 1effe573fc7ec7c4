package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// Migrate creates or extends the schema so that it matches Tables. It is
// additive and idempotent: existing columns and indexes are never dropped.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for migration: %w", err)
	}
	defer db.Close()

	drv := entsql.OpenDB(dialect.Postgres, db)
	return MigrateWithDriver(ctx, drv)
}

// MigrateWithDriver runs the schema bootstrap against an already opened ent driver.
func MigrateWithDriver(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv,
		schema.WithForeignKeys(true),
		schema.WithDropColumn(false),
		schema.WithDropIndex(false),
	)
	if err != nil {
		return fmt.Errorf("failed to create schema migrator: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Printf("Schema bootstrap complete (%d tables)", len(Tables))
	return nil
}
