package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/LuckyDraw_Go/internal/discord"
	"github.com/osse101/LuckyDraw_Go/internal/event"
	"github.com/osse101/LuckyDraw_Go/internal/server"
	"github.com/osse101/LuckyDraw_Go/internal/sse"
	"github.com/osse101/LuckyDraw_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	RevealWorker       *worker.RevealWorker
	Forwarder          *discord.Forwarder
	ResilientPublisher *event.ResilientPublisher
	Hub                *sse.Hub
	Storage            *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Reveal worker (cancel the running animation without drawing)
// 3. Announcement relays, then the resilient publisher (flush or dead-letter)
// 4. SSE hub and session storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.RevealWorker != nil {
		if err := components.RevealWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgRevealWorkerFailed, "error", err)
		}
	}

	if components.Forwarder != nil {
		if err := components.Forwarder.Wait(ctx); err != nil {
			slog.Warn(LogMsgAnnouncementsPending, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Storage != nil {
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
