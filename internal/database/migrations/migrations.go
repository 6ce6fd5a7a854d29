// Package migrations embeds the SQL schema for the relational session stores
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	goosedb "github.com/pressly/goose/v3/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Migration sets, one directory per dialect
const (
	DirPostgres = "postgres"
	DirSQLite   = "sqlite"
)

// Up applies every pending migration in dir to db.
func Up(ctx context.Context, db *sql.DB, dialect goosedb.Dialect, dir string) error {
	sub, err := fs.Sub(FS, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		slog.Default().Info("Applied migration", "dialect", string(dialect), "source", r.Source.Path, "duration", r.Duration)
	}
	return nil
}
