package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/core/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var schemaNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// migrationLockKey serializes concurrent ApplyMigrations calls across processes
const migrationLockKey = 72_001

// ApplyMigrations runs every embedded migration, in file name order, inside one transaction.
// Migrations are written to be re-runnable.
func ApplyMigrations(ctx context.Context, db *sqlx.DB, schema string) error {
	if !schemaNamePattern.MatchString(schema) {
		return fmt.Errorf("invalid schema name %q", schema)
	}

	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockKey); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}

	for _, name := range names {
		content, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		query := strings.ReplaceAll(string(content), "{{schema}}", schema)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		log.Info(ctx, "📋 Applied migration", zap.String("migration", name), zap.String("schema", schema))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migrations: %w", err)
	}
	return nil
}
