package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	pgstore "github.com/osse101/LuckyDraw_Go/internal/database/postgres"
	"github.com/osse101/LuckyDraw_Go/internal/database/storetest"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
	"github.com/osse101/LuckyDraw_Go/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestConnString(t *testing.T) {
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", ConnString("u", "p", "h", "5432", "d"))
}

func TestNewPool_BadConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "::not a url::", 2, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestPool_ConnectionsReleased(t *testing.T) {
	requireDB(t)
	checker := leaktest.NewGoroutineChecker(t)

	pool, err := NewPool(context.Background(), testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err, "iteration %d", i)

		var result int
		require.NoError(t, conn.QueryRow(ctx, "SELECT 1").Scan(&result))
		assert.Equal(t, 1, result)
		conn.Release()
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
	pool.Close()
	checker.Check(2)
}

func TestPostgresSessionRepository_Contract(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	pool, err := NewPool(ctx, testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, pgstore.Migrate(ctx, pool))

	n := 0
	storetest.Run(t, storetest.Harness{
		New: func(t *testing.T) repository.SessionStore {
			n++
			repo := pgstore.NewSessionRepository(pool, repository.StorageKey("it", n))
			require.NoError(t, repo.Clear(ctx))
			return repo
		},
		Corrupt: func(t *testing.T, store repository.SessionStore, raw []byte) {
			// JSONB rejects invalid JSON, so only shape errors can be planted
			_, err := pool.Exec(ctx, `
				INSERT INTO draw_sessions (storage_key, payload) VALUES ($1, '{"winners":[]}'::jsonb)
				ON CONFLICT (storage_key) DO UPDATE SET payload = EXCLUDED.payload
			`, storeKey(n))
			require.NoError(t, err)
		},
	})
}

func storeKey(n int) string {
	return repository.StorageKey("it", n)
}

func TestPostgres_MigrateIsIdempotent(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	pool, err := NewPool(ctx, testDBConnString, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, pgstore.Migrate(ctx, pool))
	require.NoError(t, pgstore.Migrate(ctx, pool))
}
