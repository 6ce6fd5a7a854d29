// Package lottery holds the selection engine: uniform shuffles and cosmetic
// random subsets over a pluggable random source.
package lottery

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// lockedSource guards a *rand.Rand, which is not safe for concurrent use.
// The reveal ticker and the stage controller share one source.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n) //nolint:gosec // Drawing order is not security critical
}

// NewSource returns a goroutine-safe Source. A zero seed picks one from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness
}
