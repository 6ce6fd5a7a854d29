package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/LuckyDraw_Go/internal/bootstrap"
	"github.com/osse101/LuckyDraw_Go/internal/catalog"
	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/draw"
	"github.com/osse101/LuckyDraw_Go/internal/handler"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
	"github.com/osse101/LuckyDraw_Go/internal/server"
	"github.com/osse101/LuckyDraw_Go/internal/sse"
	"github.com/osse101/LuckyDraw_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, _ := cfg.ValidateWithWarnings()
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Lucky draw exited with error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	cat, err := catalog.Load(ctx, cfg.CatalogPath, cfg.RosterPath)
	if err != nil {
		return err
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	svc := draw.NewService(storage.Store, cat, events.Bus, lottery.NewSource(cfg.DrawSeed), draw.Mode(cfg.DrawMode))

	hub := sse.NewHub()
	hub.Start()

	// Frames are cosmetic, so they never share the draw seed
	reveals := worker.NewRevealWorker(svc, hub, lottery.NewSource(0), cfg.RevealDuration, cfg.RevealInterval)

	forwarder, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		Events:  events,
		Hub:     hub,
		Reveals: reveals,
		Config:  cfg,
	})
	if err != nil {
		bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
			RevealWorker:       reveals,
			ResilientPublisher: events.Notify,
			Hub:                hub,
			Storage:            storage,
		})
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		OperatorAPIKey: cfg.OperatorAPIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, storage.Store, handler.NewDrawHandler(svc, reveals), hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		RevealWorker:       reveals,
		Forwarder:          forwarder,
		ResilientPublisher: events.Notify,
		Hub:                hub,
		Storage:            storage,
	})

	return runErr
}
