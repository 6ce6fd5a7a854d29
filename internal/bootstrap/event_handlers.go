package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/discord"
	"github.com/osse101/LuckyDraw_Go/internal/metrics"
	"github.com/osse101/LuckyDraw_Go/internal/sse"
	"github.com/osse101/LuckyDraw_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	Events  *EventSystem
	Hub     *sse.Hub
	Reveals *worker.RevealWorker
	Config  *config.Config

	// Webhook overrides the discordgo session, for tests
	Webhook discord.WebhookExecutor
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// - Metrics collector (draw counters and gauges)
// - SSE subscriber (pushes draw events to displays)
// - Reveal worker (cancels the animation on restart)
// - Discord announcer on the notify bus, when a webhook is configured
//
// The returned forwarder is nil when announcements are disabled.
func RegisterEventHandlers(deps EventHandlerDependencies) (*discord.Forwarder, error) {
	bus := deps.Events.Bus

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.Hub, bus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)

	deps.Reveals.Subscribe(bus)

	if !deps.Config.DiscordEnabled() {
		slog.Info(LogMsgAnnouncerDisabled)
		return nil, nil
	}

	client := deps.Webhook
	if client == nil {
		session, err := discord.NewSession()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscordSession, err)
		}
		client = session
	}

	announcer := discord.NewAnnouncer(client, deps.Config.DiscordWebhookID, deps.Config.DiscordWebhookToken, deps.Config.EventID)
	announcer.Register(deps.Events.Notify)
	forwarder := discord.Forward(bus, deps.Events.Notify)
	slog.Info(LogMsgAnnouncerRegistered)

	return forwarder, nil
}
