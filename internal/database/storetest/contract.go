// Package storetest holds the behaviour every SessionStore backend must share.
package storetest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// Harness builds a fresh store per subtest. Corrupt, when set, writes raw
// bytes under the store's key so malformed-value handling can be checked.
type Harness struct {
	New     func(t *testing.T) repository.SessionStore
	Corrupt func(t *testing.T, store repository.SessionStore, raw []byte)
}

// Sample is a mid-session state with a non-trivial pool order.
func Sample() domain.SessionState {
	return domain.SessionState{
		Stage:            domain.StageIntermediateResults,
		RemainingMembers: []string{"Zoe", "Ada", "李雷", "Ben"},
		Winners: []domain.Winner{
			{Name: "Cy", PrizeName: "Mug", PrizeID: 1},
			{Name: "Dee", PrizeName: "Mug", PrizeID: 1},
		},
		CurrentPrizeIndex: 0,
	}
}

// Run exercises the SessionStore contract.
func Run(t *testing.T, h Harness) {
	ctx := context.Background()

	t.Run("load empty returns nil", func(t *testing.T) {
		store := h.New(t)
		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("save then load round trips exactly", func(t *testing.T) {
		store := h.New(t)
		want := Sample()
		require.NoError(t, store.Save(ctx, want))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
	})

	t.Run("save overwrites", func(t *testing.T) {
		store := h.New(t)
		require.NoError(t, store.Save(ctx, Sample()))

		next := Sample()
		next.Stage = domain.StageRoundIntro
		next.CurrentPrizeIndex = 1
		require.NoError(t, store.Save(ctx, next))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, next, *got)
	})

	t.Run("empty slices survive", func(t *testing.T) {
		store := h.New(t)
		want := domain.SessionState{
			Stage:             domain.StageResults,
			RemainingMembers:  []string{},
			Winners:           []domain.Winner{{Name: "A", PrizeName: "P", PrizeID: 1}},
			CurrentPrizeIndex: 3,
		}
		require.NoError(t, store.Save(ctx, want))
		got, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		store := h.New(t)
		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Save(ctx, Sample()))
		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Clear(ctx))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("concurrent saves leave one whole value", func(t *testing.T) {
		store := h.New(t)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s := Sample()
				s.CurrentPrizeIndex = i
				assert.NoError(t, store.Save(ctx, s))
			}(i)
		}
		wg.Wait()

		got, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, Sample().RemainingMembers, got.RemainingMembers)
	})

	if h.Corrupt == nil {
		return
	}

	for name, raw := range map[string]string{
		"truncated json": `{"stage":"DRAW`,
		"wrong shape":    `{"stage":"DRAWING","remainingMembers":42}`,
		"no stage":       `{"winners":[]}`,
	} {
		t.Run("malformed "+name+" loads as nil", func(t *testing.T) {
			store := h.New(t)
			h.Corrupt(t, store, []byte(raw))

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}
