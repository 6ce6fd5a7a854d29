package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/draw"
	"github.com/osse101/LuckyDraw_Go/internal/event"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
	"github.com/osse101/LuckyDraw_Go/internal/metrics"
	"github.com/osse101/LuckyDraw_Go/internal/sse"
)

// RevealService is the part of the stage controller a reveal drives
type RevealService interface {
	RevealTarget(ctx context.Context) (draw.RevealTarget, error)
	CompletePrize(ctx context.Context, prizeID int) ([]domain.Winner, error)
}

// Broadcaster pushes frames to connected displays
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
}

// RevealStatus describes the running reveal
type RevealStatus struct {
	ID        uuid.UUID `json:"id"`
	PrizeID   int       `json:"prize_id"`
	StartedAt time.Time `json:"started_at"`
	Deadline  time.Time `json:"deadline"`
}

type reveal struct {
	RevealStatus
	target draw.RevealTarget
	done   chan struct{}
	once   sync.Once
}

// RevealWorker animates the current prize and forces its completion at a fixed deadline.
// Frames are cosmetic; winners come only from the controller's completion.
type RevealWorker struct {
	BaseWorker
	service  RevealService
	frames   Broadcaster
	src      lottery.Source
	duration time.Duration
	interval time.Duration
	active   *reveal
}

// NewRevealWorker creates a RevealWorker. Non-positive timings fall back to the defaults.
func NewRevealWorker(service RevealService, frames Broadcaster, src lottery.Source, duration, interval time.Duration) *RevealWorker {
	if duration <= 0 {
		duration = DefaultRevealDuration
	}
	if interval <= 0 {
		interval = DefaultRevealInterval
	}
	w := &RevealWorker{
		service:  service,
		frames:   frames,
		src:      src,
		duration: duration,
		interval: interval,
	}
	w.init()
	return w
}

// Subscribe cancels the running reveal whenever the session restarts
func (w *RevealWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.SessionRestarted, w.handleSessionRestarted)
}

func (w *RevealWorker) handleSessionRestarted(ctx context.Context, _ event.Event) error {
	if w.Cancel(ctx) {
		logger.FromContext(ctx).Info(LogMsgRevealCancelOnEvent)
	}
	return nil
}

// Begin freezes the current prize and streams frames until Stop or the deadline.
// prizeID must name the current prize.
func (w *RevealWorker) Begin(ctx context.Context, prizeID int) (RevealStatus, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopping() {
		return RevealStatus{}, ErrWorkerStopped
	}
	if w.active != nil {
		return RevealStatus{}, domain.ErrRevealInProgress
	}

	target, err := w.service.RevealTarget(ctx)
	if err != nil {
		return RevealStatus{}, err
	}
	if target.Prize.ID != prizeID {
		return RevealStatus{}, fmt.Errorf("%w: %d, current is %d", domain.ErrStalePrize, prizeID, target.Prize.ID)
	}

	now := time.Now()
	r := &reveal{
		RevealStatus: RevealStatus{
			ID:        uuid.New(),
			PrizeID:   prizeID,
			StartedAt: now,
			Deadline:  now.Add(w.duration),
		},
		target: target,
		done:   make(chan struct{}),
	}
	w.active = r
	w.timers[r.ID] = time.AfterFunc(w.duration, func() { w.onDeadline(r) })

	w.wg.Add(1)
	go w.animate(r)

	logger.FromContext(ctx).Info(LogMsgRevealStarted,
		LogFieldRevealID, r.ID,
		LogFieldPrizeID, prizeID,
		LogFieldDuration, w.duration)
	return r.RevealStatus, nil
}

// Stop ends the running reveal now and returns the committed winners
func (w *RevealWorker) Stop(ctx context.Context) ([]domain.Winner, error) {
	r := w.current()
	if r == nil {
		return nil, domain.ErrNoRevealRunning
	}
	logger.FromContext(ctx).Info(LogMsgRevealStoppedEarly,
		LogFieldRevealID, r.ID,
		LogFieldElapsed, time.Since(r.StartedAt))
	return w.finish(ctx, r, false)
}

// Cancel abandons the running reveal without completing it. It reports
// whether a reveal was cancelled.
func (w *RevealWorker) Cancel(ctx context.Context) bool {
	r := w.current()
	if r == nil {
		return false
	}

	cancelled := false
	r.once.Do(func() {
		cancelled = true
		w.detach(r)
	})
	if cancelled {
		logger.FromContext(ctx).Info(LogMsgRevealCancelled, LogFieldRevealID, r.ID)
	}
	return cancelled
}

// Active returns the running reveal, if any
func (w *RevealWorker) Active() (RevealStatus, bool) {
	r := w.current()
	if r == nil {
		return RevealStatus{}, false
	}
	return r.RevealStatus, true
}

// Shutdown cancels the running reveal and waits for in-flight completions
func (w *RevealWorker) Shutdown(ctx context.Context) error {
	w.Cancel(ctx)
	return w.shutdownInternal(ctx, RevealWorkerName)
}

func (w *RevealWorker) current() *reveal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

func (w *RevealWorker) onDeadline(r *reveal) {
	w.mu.Lock()
	if w.stopping() {
		w.mu.Unlock()
		return
	}
	delete(w.timers, r.ID)
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info(LogMsgRevealDeadline, LogFieldRevealID, r.ID)

	if _, err := w.finish(ctx, r, true); err != nil && !errors.Is(err, domain.ErrNoRevealRunning) {
		log.Error(LogMsgRevealCompleteFail, LogFieldRevealID, r.ID, LogFieldError, err)
	}
}

// finish completes r at most once across Stop, the deadline and Cancel
func (w *RevealWorker) finish(ctx context.Context, r *reveal, forced bool) ([]domain.Winner, error) {
	var (
		winners []domain.Winner
		err     error
		ran     bool
	)
	r.once.Do(func() {
		ran = true
		w.detach(r)

		winners, err = w.service.CompletePrize(ctx, r.PrizeID)
		elapsed := time.Since(r.StartedAt)
		metrics.RevealDuration.Observe(elapsed.Seconds())
		if forced {
			metrics.RevealsForced.Inc()
		}
		if err == nil {
			logger.FromContext(ctx).Info(LogMsgRevealCompleted,
				LogFieldRevealID, r.ID,
				LogFieldPrizeID, r.PrizeID,
				LogFieldWinners, len(winners),
				LogFieldElapsed, elapsed)
		}
	})
	if !ran {
		return nil, domain.ErrNoRevealRunning
	}
	return winners, err
}

func (w *RevealWorker) detach(r *reveal) {
	w.mu.Lock()
	if w.active == r {
		w.active = nil
	}
	w.stopTimerLocked(r.ID)
	w.mu.Unlock()
	close(r.done)
}

func (w *RevealWorker) animate(r *reveal) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.emitFrame(r)
	for {
		select {
		case <-r.done:
			return
		case <-w.shutdown:
			return
		case <-ticker.C:
			w.emitFrame(r)
		}
	}
}

func (w *RevealWorker) emitFrame(r *reveal) {
	if w.frames == nil {
		return
	}
	remaining := time.Until(r.Deadline)
	if remaining < 0 {
		remaining = 0
	}
	w.frames.Broadcast(sse.EventTypeRevealFrame, sse.RevealFramePayload{
		PrizeID:     r.PrizeID,
		PrizeName:   r.target.Prize.Name,
		Names:       lottery.RandomSubset(w.src, r.target.Pool, r.target.Prize.Count),
		ElapsedMs:   time.Since(r.StartedAt).Milliseconds(),
		RemainingMs: remaining.Milliseconds(),
	})
}
