package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/database"
	"github.com/osse101/LuckyDraw_Go/internal/database/filestore"
	"github.com/osse101/LuckyDraw_Go/internal/database/memory"
	"github.com/osse101/LuckyDraw_Go/internal/database/postgres"
	"github.com/osse101/LuckyDraw_Go/internal/database/sqlite"
	"github.com/osse101/LuckyDraw_Go/internal/metrics"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// Storage is the session store selected by STORE_DRIVER, wrapped with the
// status cache and store metrics, plus whatever must be closed on shutdown.
type Storage struct {
	Store   *metrics.InstrumentedStore
	closers []func() error
}

// Close releases backend resources
func (s *Storage) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}
}

// InitializeStorage opens the configured backend
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	key := cfg.StorageKey()
	storage := &Storage{}

	var inner repository.SessionStore
	switch cfg.StoreDriver {
	case config.StoreDriverFile:
		inner = filestore.New(cfg.StoreDir, key)

	case config.StoreDriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateStoreDir, err)
		}
		store, err := sqlite.Open(ctx, cfg.SQLitePath, key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		storage.closers = append(storage.closers, store.Close)
		inner = store

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), int(cfg.DBMaxConns), PoolMaxConnIdleTime, PoolMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		storage.closers = append(storage.closers, func() error {
			pool.Close()
			return nil
		})
		inner = postgres.NewSessionRepository(pool, key)

	case config.StoreDriverMemory:
		inner = memory.New()

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}

	if cfg.StatusCacheTTL > 0 && cfg.StoreDriver != config.StoreDriverMemory {
		inner = database.NewCachedStore(inner, key, database.DefaultCacheSize, cfg.StatusCacheTTL)
	} else {
		slog.Info(LogMsgStatusCacheDisabled, "driver", cfg.StoreDriver)
	}

	storage.Store = metrics.InstrumentStore(inner)

	slog.Info(LogMsgStorageInitialized,
		"driver", cfg.StoreDriver,
		"key", key,
		"cache_ttl", cfg.StatusCacheTTL)

	return storage, nil
}
