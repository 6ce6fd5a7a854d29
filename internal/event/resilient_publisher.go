package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/LuckyDraw_Go/internal/logger"
)

type retryItem struct {
	event       Event
	attempt     int
	nextAttempt time.Time
	lastErr     error
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// Callers are never blocked by a failing subscriber.
type ResilientPublisher struct {
	bus        Bus
	maxRetries int
	retryDelay time.Duration
	retryQueue chan retryItem
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher starts the retry worker. Events that still fail after
// maxRetries attempts are appended to deadLetterPath.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead letter file: %w", err)
	}

	p := &ResilientPublisher{
		bus:        bus,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		retryQueue: make(chan retryItem, RetryQueueBufferSize),
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry publishes once and queues the event for retry on failure.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryItem{
		event:       event,
		attempt:     1,
		nextAttempt: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
		lastErr:     err,
	})
}

// Publish satisfies Bus. Failures are retried in the background, so it never returns an error.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the wrapped bus.
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case p.retryQueue <- item:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			return
		case item := <-p.retryQueue:
			if !p.waitUntil(item.nextAttempt) {
				p.writeDeadLetter(item)
				return
			}
			p.retry(item)
		}
	}
}

// waitUntil sleeps until t and reports false if shutdown interrupted it.
func (p *ResilientPublisher) waitUntil(t time.Time) bool {
	d := time.Until(t)
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-p.shutdown:
		return false
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	err := p.bus.Publish(context.Background(), item.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
		return
	}

	item.lastErr = err
	if item.attempt >= p.maxRetries {
		logger.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt, "error", err)
		p.writeDeadLetter(item)
		return
	}

	item.attempt++
	item.nextAttempt = time.Now().Add(CalculateRetryDelay(p.retryDelay, item.attempt))
	logger.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
	p.enqueue(item)
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", item.event.Type, "error", err)
	}
}

// Shutdown stops the worker, dead-letters whatever is still queued and closes the file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	drained := 0
	for {
		select {
		case item := <-p.retryQueue:
			p.writeDeadLetter(item)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return p.deadLetter.Close()
		}
	}
}
