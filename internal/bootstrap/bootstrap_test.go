package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/catalog"
	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/draw"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
	"github.com/osse101/LuckyDraw_Go/internal/sse"
	"github.com/osse101/LuckyDraw_Go/internal/worker"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		EnvSchemaVersion:    config.ExpectedEnvSchemaVersion,
		Port:                8080,
		LogLevel:            "debug",
		LogFormat:           config.LogFormatText,
		LogDir:              filepath.Join(dir, "logs"),
		Environment:         config.EnvironmentDev,
		ServiceName:         "lucky-draw",
		Version:             "test",
		EventID:             "test",
		StateRevision:       1,
		DrawMode:            config.DrawModeStaged,
		RevealDuration:      time.Second,
		RevealInterval:      20 * time.Millisecond,
		StoreDriver:         config.StoreDriverFile,
		StoreDir:            filepath.Join(dir, "data"),
		SQLitePath:          filepath.Join(dir, "data", "draw.db"),
		StatusCacheTTL:      time.Second,
		EventMaxRetries:     2,
		EventRetryDelay:     5 * time.Millisecond,
		EventDeadLetterPath: filepath.Join(dir, "logs", "deadletter.jsonl"),
	}
}

func TestInitializeStorage(t *testing.T) {
	for _, driver := range []string{config.StoreDriverFile, config.StoreDriverSQLite, config.StoreDriverMemory} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.StoreDriver = driver
			ctx := context.Background()

			storage, err := InitializeStorage(ctx, cfg)
			require.NoError(t, err)
			defer storage.Close()

			require.NoError(t, storage.Store.Ping(ctx))

			state := domain.SessionState{
				Stage:            domain.StageDrawing,
				RemainingMembers: []string{"ann", "bob"},
				Winners:          []domain.Winner{},
			}
			require.NoError(t, storage.Store.Save(ctx, state))

			loaded, err := storage.Store.Load(ctx)
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Equal(t, domain.StageDrawing, loaded.Stage)
			assert.Equal(t, []string{"ann", "bob"}, loaded.RemainingMembers)

			require.NoError(t, storage.Store.Clear(ctx))
			loaded, err = storage.Store.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, loaded)
		})
	}
}

func TestInitializeStorage_UnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreDriver = "redis"

	_, err := InitializeStorage(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownStoreDriver)
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_10-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deadletter.jsonl"), nil, 0o600))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "deadletter.jsonl")
	assert.NotContains(t, names, "session_2026-01-01_10-00-00.log")
	assert.Contains(t, names, "session_2026-01-12_10-00-00.log")
}

func TestSetupLogger_WritesFileAndStdout(t *testing.T) {
	cfg := testConfig(t)
	var stdout bytes.Buffer
	now := time.Date(2026, 2, 14, 19, 0, 0, 0, time.UTC)

	logFile, err := setupLogger(cfg, &stdout, now)
	require.NoError(t, err)
	defer logFile.Close()

	assert.Equal(t, filepath.Join(cfg.LogDir, "session_2026-02-14_19-00-00.log"), logFile.Name())
	assert.Contains(t, stdout.String(), LogMsgStartingService)

	data, err := os.ReadFile(logFile.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingService)
}

type countingWebhook struct {
	calls atomic.Int32
}

func (c *countingWebhook) WebhookExecute(string, string, bool, *discordgo.WebhookParams, ...discordgo.RequestOption) (*discordgo.Message, error) {
	c.calls.Add(1)
	return &discordgo.Message{}, nil
}

func TestWiring_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	cfg.DiscordWebhookID = "id"
	cfg.DiscordWebhookToken = "token"
	ctx := context.Background()

	storage, err := InitializeStorage(ctx, cfg)
	require.NoError(t, err)

	events, err := InitializeEventSystem(cfg)
	require.NoError(t, err)

	cat, err := catalog.New([]domain.Prize{
		{ID: 1, Name: "Mug", Count: 1, Round: 1, Group: domain.GroupA},
	}, []string{"ann", "bob"})
	require.NoError(t, err)

	svc := draw.NewService(storage.Store, cat, events.Bus, lottery.NewSource(1), draw.Mode(cfg.DrawMode))
	hub := sse.NewHub()
	hub.Start()
	reveals := worker.NewRevealWorker(svc, hub, lottery.NewSource(2), cfg.RevealDuration, cfg.RevealInterval)

	webhook := &countingWebhook{}
	forwarder, err := RegisterEventHandlers(EventHandlerDependencies{
		Events:  events,
		Hub:     hub,
		Reveals: reveals,
		Config:  cfg,
		Webhook: webhook,
	})
	require.NoError(t, err)
	require.NotNil(t, forwarder)

	_, err = svc.Start(ctx)
	require.NoError(t, err)
	_, err = svc.Continue(ctx)
	require.NoError(t, err)
	_, err = reveals.Begin(ctx, 1)
	require.NoError(t, err)
	winners, err := reveals.Stop(ctx)
	require.NoError(t, err)
	assert.Len(t, winners, 1)

	require.Eventually(t, func() bool {
		return webhook.calls.Load() == 2
	}, 2*time.Second, 5*time.Millisecond, "session start and round announcements")

	shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		RevealWorker:       reveals,
		Forwarder:          forwarder,
		ResilientPublisher: events.Notify,
		Hub:                hub,
		Storage:            storage,
	})
}

func TestRegisterEventHandlers_DiscordDisabled(t *testing.T) {
	cfg := testConfig(t)
	events, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	defer func() { _ = events.Notify.Shutdown(context.Background()) }()

	hub := sse.NewHub()
	reveals := worker.NewRevealWorker(nil, hub, lottery.NewSource(1), 0, 0)
	defer func() { _ = reveals.Shutdown(context.Background()) }()

	forwarder, err := RegisterEventHandlers(EventHandlerDependencies{
		Events:  events,
		Hub:     hub,
		Reveals: reveals,
		Config:  cfg,
	})
	require.NoError(t, err)
	assert.Nil(t, forwarder)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
