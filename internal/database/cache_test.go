package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/database/memory"
	"github.com/osse101/LuckyDraw_Go/internal/database/storetest"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, state domain.SessionState) error {
	return m.Called(ctx, state).Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context) (*domain.SessionState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionState), args.Error(1)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestCachedStore_Contract(t *testing.T) {
	storetest.Run(t, storetest.Harness{
		New: func(t *testing.T) repository.SessionStore {
			return NewCachedStore(memory.New(), repository.DefaultStorageKey, 0, 0)
		},
	})
}

func TestCachedStore_LoadHitsBackendOnce(t *testing.T) {
	ctx := context.Background()
	inner := new(MockSessionStore)
	saved := storetest.Sample()
	inner.On("Load", ctx).Return(&saved, nil).Once()

	c := NewCachedStore(inner, "k", 4, time.Minute)
	for i := 0; i < 3; i++ {
		got, err := c.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, saved, *got)
	}
	inner.AssertExpectations(t)
}

func TestCachedStore_CachesAbsence(t *testing.T) {
	ctx := context.Background()
	inner := new(MockSessionStore)
	inner.On("Load", ctx).Return(nil, nil).Once()

	c := NewCachedStore(inner, "k", 4, time.Minute)
	for i := 0; i < 2; i++ {
		got, err := c.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	inner.AssertExpectations(t)
}

func TestCachedStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewCachedStore(memory.New(), "k", 4, time.Minute)
	require.NoError(t, c.Save(ctx, storetest.Sample()))

	got, err := c.Load(ctx)
	require.NoError(t, err)
	got.RemainingMembers[0] = "mutated"

	again, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, storetest.Sample().RemainingMembers, again.RemainingMembers)
}

func TestCachedStore_FailedSaveEvicts(t *testing.T) {
	ctx := context.Background()
	inner := new(MockSessionStore)
	first := storetest.Sample()
	inner.On("Save", ctx, first).Return(nil).Once()
	second := storetest.Sample()
	second.CurrentPrizeIndex = 1
	inner.On("Save", ctx, second).Return(errors.New("disk full")).Once()
	inner.On("Load", ctx).Return(&first, nil).Once()

	c := NewCachedStore(inner, "k", 4, time.Minute)
	require.NoError(t, c.Save(ctx, first))
	require.Error(t, c.Save(ctx, second))

	got, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, *got, "after a failed save the backend is authoritative")
	inner.AssertExpectations(t)
}

func TestCachedStore_LoadErrorNotCached(t *testing.T) {
	ctx := context.Background()
	inner := new(MockSessionStore)
	inner.On("Load", ctx).Return(nil, errors.New("io")).Once()
	inner.On("Load", ctx).Return(nil, nil).Once()

	c := NewCachedStore(inner, "k", 4, time.Minute)
	_, err := c.Load(ctx)
	require.Error(t, err)
	got, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	inner.AssertExpectations(t)
}

func TestCachedStore_VersionMismatchInvalidates(t *testing.T) {
	ctx := context.Background()
	inner := new(MockSessionStore)
	fresh := storetest.Sample()
	inner.On("Load", ctx).Return(&fresh, nil).Once()

	c := NewCachedStore(inner, "k", 4, time.Minute)
	c.lru.Add("k", &cachedSession{Version: "0.9", State: nil})

	got, err := c.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	inner.AssertExpectations(t)
}

func TestCachedStore_Expires(t *testing.T) {
	ctx := context.Background()
	inner := new(MockSessionStore)
	inner.On("Load", ctx).Return(nil, nil).Twice()

	c := NewCachedStore(inner, "k", 4, 20*time.Millisecond)
	_, _ = c.Load(ctx)
	time.Sleep(60 * time.Millisecond)
	_, _ = c.Load(ctx)
	inner.AssertExpectations(t)
}
