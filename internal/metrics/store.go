package metrics

import (
	"context"
	"time"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// InstrumentedStore records latency and outcome of every session store call
type InstrumentedStore struct {
	inner repository.SessionStore
}

// InstrumentStore wraps a session store with metrics
func InstrumentStore(inner repository.SessionStore) *InstrumentedStore {
	return &InstrumentedStore{inner: inner}
}

func (s *InstrumentedStore) Save(ctx context.Context, state domain.SessionState) error {
	start := time.Now()
	err := s.inner.Save(ctx, state)
	observe(OperationSave, start, err)
	return err
}

func (s *InstrumentedStore) Load(ctx context.Context) (*domain.SessionState, error) {
	start := time.Now()
	state, err := s.inner.Load(ctx)
	observe(OperationLoad, start, err)
	return state, err
}

func (s *InstrumentedStore) Clear(ctx context.Context) error {
	start := time.Now()
	err := s.inner.Clear(ctx)
	observe(OperationClear, start, err)
	return err
}

// Ping delegates when the wrapped store supports it
func (s *InstrumentedStore) Ping(ctx context.Context) error {
	if p, ok := s.inner.(repository.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func observe(op string, start time.Time, err error) {
	StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	StoreOperations.WithLabelValues(op, outcome).Inc()
}
