package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// Storage key defaults
const (
	DefaultEventID       = "2026"
	DefaultStateRevision = 1
)

// StorageKey names the single slot a drawing session is saved under.
// Bumping revision orphans sessions written by an incompatible build.
func StorageKey(eventID string, revision int) string {
	return fmt.Sprintf("lottery_state_%s_v%d", eventID, revision)
}

// DefaultStorageKey is StorageKey(DefaultEventID, DefaultStateRevision).
var DefaultStorageKey = StorageKey(DefaultEventID, DefaultStateRevision)

// SessionStore persists the drawing session under one fixed key.
//
// Load returns (nil, nil) when nothing is saved or the saved value cannot be
// decoded. A non-nil error means the backend itself failed.
type SessionStore interface {
	Save(ctx context.Context, state domain.SessionState) error
	Load(ctx context.Context) (*domain.SessionState, error)
	Clear(ctx context.Context) error
}

// Pinger is implemented by stores backed by a remote or file resource.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EncodeSession renders the persisted layout.
func EncodeSession(state domain.SessionState) ([]byte, error) {
	if state.RemainingMembers == nil {
		state.RemainingMembers = []string{}
	}
	if state.Winners == nil {
		state.Winners = []domain.Winner{}
	}
	return json.Marshal(state)
}

// DecodeSession parses a persisted value. It returns nil for anything that is
// not a well-formed session record.
func DecodeSession(data []byte) *domain.SessionState {
	var state domain.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}
	if state.Stage == "" {
		return nil
	}
	if state.RemainingMembers == nil {
		state.RemainingMembers = []string{}
	}
	if state.Winners == nil {
		state.Winners = []domain.Winner{}
	}
	return &state
}
