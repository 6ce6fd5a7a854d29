package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/event"
)

// EventSystem holds the draw bus and the retrying bus used for outbound
// notifications.
type EventSystem struct {
	// Bus receives every draw event synchronously
	Bus event.Bus
	// Notify retries failed deliveries and dead-letters what never succeeds
	Notify *event.ResilientPublisher
}

// InitializeEventSystem creates the draw bus and the resilient notification publisher.
// Zero retry settings fall back to defaults.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	notify, err := event.NewResilientPublisher(event.NewMemoryBus(), maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return &EventSystem{
		Bus:    event.NewMemoryBus(),
		Notify: notify,
	}, nil
}
