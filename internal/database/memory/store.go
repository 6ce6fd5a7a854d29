// Package memory is a process-local session store for tests and kiosk runs
// that should forget everything on exit.
package memory

import (
	"context"
	"sync"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// Store holds the encoded session so values round-trip through the same
// layout as the durable stores.
type Store struct {
	mu   sync.Mutex
	data []byte
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Save replaces the stored value.
func (s *Store) Save(_ context.Context, state domain.SessionState) error {
	data, err := repository.EncodeSession(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Load decodes the stored value, or returns nil when empty.
func (s *Store) Load(_ context.Context) (*domain.SessionState, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()

	if data == nil {
		return nil, nil
	}
	return repository.DecodeSession(data), nil
}

// Clear empties the store.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
	return nil
}

// SetRaw stores bytes verbatim, bypassing encoding.
func (s *Store) SetRaw(data []byte) {
	s.mu.Lock()
	s.data = append([]byte(nil), data...)
	s.mu.Unlock()
}

var _ repository.SessionStore = (*Store)(nil)
