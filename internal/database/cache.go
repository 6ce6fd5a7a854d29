package database

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// cachedSession wraps a loaded value with version metadata. A nil State
// records that nothing is saved.
type cachedSession struct {
	Version  string
	State    *domain.SessionState
	CachedAt time.Time
}

// CachedStore is a write-through LRU in front of a SessionStore. Status
// polling at START hits memory instead of the backend.
type CachedStore struct {
	inner repository.SessionStore
	key   string
	lru   *expirable.LRU[string, *cachedSession]
}

// NewCachedStore wraps inner. key should be the storage key inner writes under.
func NewCachedStore(inner repository.SessionStore, key string, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		inner: inner,
		key:   key,
		lru:   expirable.NewLRU[string, *cachedSession](size, nil, ttl),
	}
}

// Save writes through and caches the saved value on success.
func (c *CachedStore) Save(ctx context.Context, state domain.SessionState) error {
	if err := c.inner.Save(ctx, state); err != nil {
		c.lru.Remove(c.key)
		return err
	}
	saved := state.Clone()
	c.set(&saved)
	return nil
}

// Load serves from cache when a current-version entry exists.
func (c *CachedStore) Load(ctx context.Context) (*domain.SessionState, error) {
	if entry, ok := c.lru.Get(c.key); ok {
		if entry.Version == CacheSchemaVersion {
			logger.FromContext(ctx).Debug(LogMsgCacheHit, "key", c.key)
			return cloneOrNil(entry.State), nil
		}
		c.lru.Remove(c.key)
	}

	state, err := c.inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.set(cloneOrNil(state))
	return state, nil
}

// Clear removes the entry from the backend and the cache.
func (c *CachedStore) Clear(ctx context.Context) error {
	c.lru.Remove(c.key)
	return c.inner.Clear(ctx)
}

// Ping delegates when the wrapped store supports it.
func (c *CachedStore) Ping(ctx context.Context) error {
	if p, ok := c.inner.(repository.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (c *CachedStore) set(state *domain.SessionState) {
	c.lru.Add(c.key, &cachedSession{
		Version:  CacheSchemaVersion,
		State:    state,
		CachedAt: time.Now(),
	})
}

func cloneOrNil(s *domain.SessionState) *domain.SessionState {
	if s == nil {
		return nil
	}
	cp := s.Clone()
	return &cp
}
