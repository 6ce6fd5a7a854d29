package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/database/storetest"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, storetest.Harness{
		New: func(t *testing.T) repository.SessionStore {
			return New(filepath.Join(t.TempDir(), "state"), repository.DefaultStorageKey)
		},
		Corrupt: func(t *testing.T, store repository.SessionStore, raw []byte) {
			s := store.(*Store)
			require.NoError(t, os.MkdirAll(s.dir, 0o755))
			require.NoError(t, os.WriteFile(s.Path(), raw, 0o600))
		},
	})
}

func TestStore_PathUsesKey(t *testing.T) {
	s := New("/var/lib/draw", repository.StorageKey("gala", 2))
	assert.Equal(t, "/var/lib/draw/lottery_state_gala_v2.json", s.Path())
}

func TestStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, repository.DefaultStorageKey)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save(ctx, storetest.Sample()))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, repository.DefaultStorageKey+".json", entries[0].Name())
}

func TestStore_Ping(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "dir"), repository.DefaultStorageKey)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestStore_CancelledContext(t *testing.T) {
	s := New(t.TempDir(), repository.DefaultStorageKey)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Save(ctx, storetest.Sample()), context.Canceled)
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
