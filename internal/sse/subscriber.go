package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/LuckyDraw_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers handlers for all session event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SessionStarted, s.handleSession)
	s.bus.Subscribe(event.SessionResumed, s.handleSession)
	s.bus.Subscribe(event.SessionRestarted, s.handleSession)
	s.bus.Subscribe(event.StageChanged, s.handleStageChanged)
	s.bus.Subscribe(event.RoundCompleted, s.handleRoundCompleted)

	slog.Info(LogMsgSubscriberReady, "types", []string{
		string(event.SessionStarted),
		string(event.SessionResumed),
		string(event.SessionRestarted),
		string(event.StageChanged),
		string(event.RoundCompleted),
	})
}

func (s *Subscriber) handleSession(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SessionPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), SessionPayload{
		Stage:      payload.Stage,
		PrizeIndex: payload.PrizeIndex,
		Remaining:  payload.Remaining,
		Winners:    payload.Winners,
	})
	return nil
}

func (s *Subscriber) handleStageChanged(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.StageChangedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeStageChanged, StageChangedPayload{
		From:       payload.From,
		To:         payload.To,
		PrizeIndex: payload.PrizeIndex,
	})
	return nil
}

func (s *Subscriber) handleRoundCompleted(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RoundCompletedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRoundCompleted, RoundCompletedPayload{
		PrizeID:    payload.Prize.ID,
		PrizeName:  payload.Prize.Name,
		PrizeIndex: payload.PrizeIndex,
		Winners:    payload.Winners,
		Remaining:  payload.Remaining,
		IsLast:     payload.IsLast,
	})
	return nil
}
