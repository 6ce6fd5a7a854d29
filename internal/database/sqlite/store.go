// Package sqlite stores the drawing session in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	goosedb "github.com/pressly/goose/v3/database"
	_ "modernc.org/sqlite"

	"github.com/osse101/LuckyDraw_Go/internal/database/migrations"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

const dsnPragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

// Store implements repository.SessionStore on SQLite.
type Store struct {
	sqlDB *sql.DB
	key   string
}

// Open opens (creating if needed) the database at path and applies migrations.
func Open(ctx context.Context, path, key string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + dsnPragmas
	if path == ":memory:" {
		dsn = path
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one writer; also keeps :memory: databases on a single connection
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := migrations.Up(ctx, sqlDB, goosedb.DialectSQLite3, migrations.DirSQLite); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB, key: key}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save upserts the session row.
func (s *Store) Save(ctx context.Context, state domain.SessionState) error {
	data, err := repository.EncodeSession(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
		INSERT INTO draw_sessions (storage_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(storage_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, s.key, string(data), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns nil when no row exists or the payload does not decode.
func (s *Store) Load(ctx context.Context) (*domain.SessionState, error) {
	var payload string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload FROM draw_sessions WHERE storage_key = ?`, s.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	state := repository.DecodeSession([]byte(payload))
	if state == nil {
		logger.FromContext(ctx).Warn("Saved session is malformed, ignoring", "key", s.key)
	}
	return state, nil
}

// Clear deletes the session row.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM draw_sessions WHERE storage_key = ?`, s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

var _ repository.SessionStore = (*Store)(nil)
