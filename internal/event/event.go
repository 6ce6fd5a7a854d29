package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata carries optional context alongside a payload
type Metadata interface{}

// Event represents a domain event
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue reads key from map metadata
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Drawing session event types
const (
	SessionStarted   Type = domain.EventTypeSessionStarted
	SessionResumed   Type = domain.EventTypeSessionResumed
	SessionRestarted Type = domain.EventTypeSessionRestarted
	StageChanged     Type = domain.EventTypeStageChanged
	RoundCompleted   Type = domain.EventTypeRoundCompleted
)

// SessionPayloadV1 describes the session right after it started, resumed or restarted
type SessionPayloadV1 struct {
	Stage      domain.Stage `json:"stage"`
	PrizeIndex int          `json:"prize_index"`
	Remaining  int          `json:"remaining"`
	Winners    int          `json:"winners"`
}

// StageChangedPayloadV1 is published on every stage transition
type StageChangedPayloadV1 struct {
	From       domain.Stage `json:"from"`
	To         domain.Stage `json:"to"`
	PrizeIndex int          `json:"prize_index"`
}

// RoundCompletedPayloadV1 carries the committed winners of one prize
type RoundCompletedPayloadV1 struct {
	Prize      domain.Prize `json:"prize"`
	PrizeIndex int          `json:"prize_index"`
	Winners    []string     `json:"winners"`
	Remaining  int          `json:"remaining"`
	IsLast     bool         `json:"is_last"`
}

// NewSessionEvent creates a session lifecycle event
func NewSessionEvent(t Type, state domain.SessionState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: SessionPayloadV1{
			Stage:      state.Stage,
			PrizeIndex: state.CurrentPrizeIndex,
			Remaining:  len(state.RemainingMembers),
			Winners:    len(state.Winners),
		},
	}
}

// NewStageChangedEvent creates a stage.changed event
func NewStageChangedEvent(from, to domain.Stage, prizeIndex int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StageChanged,
		Payload: StageChangedPayloadV1{From: from, To: to, PrizeIndex: prizeIndex},
	}
}

// NewRoundCompletedEvent creates a round.completed event
func NewRoundCompletedEvent(prize domain.Prize, prizeIndex int, winners []string, remaining int, isLast bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundCompleted,
		Payload: RoundCompletedPayloadV1{
			Prize:      prize,
			PrizeIndex: prizeIndex,
			Winners:    winners,
			Remaining:  remaining,
			IsLast:     isLast,
		},
		Metadata: map[string]interface{}{
			"prize_id": prize.ID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus is the interface for the event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
