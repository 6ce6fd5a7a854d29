package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/LuckyDraw_Go/internal/event"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all drawing events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SessionStarted,
		event.SessionResumed,
		event.SessionRestarted,
		event.StageChanged,
		event.RoundCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.SessionPayloadV1:
		Sessions.WithLabelValues(string(evt.Type)).Inc()
		RemainingPool.Set(float64(p.Remaining))

	case event.StageChangedPayloadV1:
		StageTransitions.WithLabelValues(string(p.From), string(p.To)).Inc()

	case event.RoundCompletedPayloadV1:
		RoundsCompleted.WithLabelValues(strconv.Itoa(p.Prize.ID)).Inc()
		WinnersDrawn.Add(float64(len(p.Winners)))
		RemainingPool.Set(float64(p.Remaining))

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
