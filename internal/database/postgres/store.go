// Package postgres keeps the single drawing session in PostgreSQL, an
// alternative durable backend for hosts that already run a database.
// One server process owns the session; the table is not a coordination point.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	goosedb "github.com/pressly/goose/v3/database"

	"github.com/osse101/LuckyDraw_Go/internal/database/migrations"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// SessionRepository implements repository.SessionStore for PostgreSQL
type SessionRepository struct {
	db  *pgxpool.Pool
	key string
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool, key string) *SessionRepository {
	return &SessionRepository{db: db, key: key}
}

// Migrate applies the embedded schema through a database/sql view of the pool
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	return migrations.Up(ctx, sqlDB, goosedb.DialectPostgres, migrations.DirPostgres)
}

// Save upserts the session row
func (r *SessionRepository) Save(ctx context.Context, state domain.SessionState) error {
	data, err := repository.EncodeSession(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	query := `
		INSERT INTO draw_sessions (storage_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (storage_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, r.key, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns nil when no row exists or the payload does not decode
func (r *SessionRepository) Load(ctx context.Context) (*domain.SessionState, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM draw_sessions WHERE storage_key = $1`, r.key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	state := repository.DecodeSession(payload)
	if state == nil {
		logger.FromContext(ctx).Warn("Saved session is malformed, ignoring", "key", r.key)
	}
	return state, nil
}

// Clear deletes the session row
func (r *SessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM draw_sessions WHERE storage_key = $1`, r.key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Ping checks the pool
func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

var _ repository.SessionStore = (*SessionRepository)(nil)
