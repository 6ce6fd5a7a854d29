package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/draw"
	"github.com/osse101/LuckyDraw_Go/internal/event"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
	"github.com/osse101/LuckyDraw_Go/internal/sse"
	"github.com/osse101/LuckyDraw_Go/internal/testing/leaktest"
)

type fakeRevealService struct {
	prize     domain.Prize
	pool      []string
	targetErr error
	completed atomic.Int32
	gotPrize  atomic.Int32
}

func (f *fakeRevealService) RevealTarget(context.Context) (draw.RevealTarget, error) {
	if f.targetErr != nil {
		return draw.RevealTarget{}, f.targetErr
	}
	return draw.RevealTarget{Prize: f.prize, Pool: append([]string{}, f.pool...)}, nil
}

func (f *fakeRevealService) CompletePrize(_ context.Context, prizeID int) ([]domain.Winner, error) {
	f.completed.Add(1)
	f.gotPrize.Store(int32(prizeID))
	out := make([]domain.Winner, f.prize.Count)
	for i := range out {
		out[i] = domain.Winner{Name: f.pool[i], PrizeID: prizeID, PrizeName: f.prize.Name}
	}
	return out, nil
}

type frameRecorder struct {
	mu     sync.Mutex
	frames []sse.RevealFramePayload
}

func (r *frameRecorder) Broadcast(eventType string, payload interface{}) {
	if eventType != sse.EventTypeRevealFrame {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, payload.(sse.RevealFramePayload))
}

func (r *frameRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func newFakeService() *fakeRevealService {
	return &fakeRevealService{
		prize: domain.Prize{ID: 7, Name: "Lamp", Count: 2, Round: 1, Group: domain.GroupA},
		pool:  []string{"ann", "bob", "cy", "dee", "eve"},
	}
}

func newTestWorker(svc RevealService, frames Broadcaster, duration time.Duration) *RevealWorker {
	return NewRevealWorker(svc, frames, lottery.NewSource(3), duration, 5*time.Millisecond)
}

func TestRevealWorker_DeadlineForcesCompletion(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	ctx := context.Background()
	svc := newFakeService()
	frames := &frameRecorder{}
	w := newTestWorker(svc, frames, 60*time.Millisecond)

	status, err := w.Begin(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, status.PrizeID)
	assert.True(t, status.Deadline.After(status.StartedAt))

	require.Eventually(t, func() bool { return svc.completed.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	_, running := w.Active()
	assert.False(t, running)
	assert.Equal(t, int32(7), svc.gotPrize.Load())
	assert.Positive(t, frames.count())

	frames.mu.Lock()
	for _, f := range frames.frames {
		assert.Len(t, f.Names, 2)
		assert.Subset(t, svc.pool, f.Names)
	}
	frames.mu.Unlock()

	require.NoError(t, w.Shutdown(ctx))
	checker.Check(0)
}

func TestRevealWorker_EarlyStopCompletesOnce(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	ctx := context.Background()
	svc := newFakeService()
	w := newTestWorker(svc, &frameRecorder{}, 80*time.Millisecond)

	_, err := w.Begin(ctx, 7)
	require.NoError(t, err)

	winners, err := w.Stop(ctx)
	require.NoError(t, err)
	assert.Len(t, winners, 2)

	_, err = w.Stop(ctx)
	assert.ErrorIs(t, err, domain.ErrNoRevealRunning)

	// the deadline passing afterwards must not complete again
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), svc.completed.Load())

	require.NoError(t, w.Shutdown(ctx))
	checker.Check(0)
}

func TestRevealWorker_StopRacesDeadline(t *testing.T) {
	ctx := context.Background()
	svc := newFakeService()
	w := newTestWorker(svc, nil, 20*time.Millisecond)

	for i := 0; i < 20; i++ {
		_, err := w.Begin(ctx, 7)
		require.NoError(t, err)
		time.Sleep(19 * time.Millisecond)
		_, _ = w.Stop(ctx)
		require.Eventually(t, func() bool {
			_, running := w.Active()
			return !running
		}, time.Second, time.Millisecond)
	}

	require.Eventually(t, func() bool { return svc.completed.Load() == 20 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Shutdown(ctx))
}

func TestRevealWorker_OneAtATime(t *testing.T) {
	ctx := context.Background()
	w := newTestWorker(newFakeService(), nil, time.Second)
	defer func() { require.NoError(t, w.Shutdown(ctx)) }()

	_, err := w.Begin(ctx, 7)
	require.NoError(t, err)

	_, err = w.Begin(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrRevealInProgress)
}

func TestRevealWorker_RejectsStalePrize(t *testing.T) {
	ctx := context.Background()
	w := newTestWorker(newFakeService(), nil, time.Second)
	defer func() { require.NoError(t, w.Shutdown(ctx)) }()

	_, err := w.Begin(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrStalePrize)
	_, running := w.Active()
	assert.False(t, running)
}

func TestRevealWorker_TargetErrorPropagates(t *testing.T) {
	ctx := context.Background()
	svc := newFakeService()
	svc.targetErr = domain.ErrRoundAlreadyDrawn
	w := newTestWorker(svc, nil, time.Second)
	defer func() { require.NoError(t, w.Shutdown(ctx)) }()

	_, err := w.Begin(ctx, 7)
	assert.True(t, errors.Is(err, domain.ErrRoundAlreadyDrawn))
}

func TestRevealWorker_RestartCancelsWithoutCompleting(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	ctx := context.Background()
	svc := newFakeService()
	bus := event.NewMemoryBus()
	w := newTestWorker(svc, &frameRecorder{}, 40*time.Millisecond)
	w.Subscribe(bus)

	_, err := w.Begin(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, event.NewSessionEvent(event.SessionRestarted, domain.SessionState{Stage: domain.StageStart})))
	_, running := w.Active()
	assert.False(t, running)

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, svc.completed.Load())

	_, err = w.Stop(ctx)
	assert.ErrorIs(t, err, domain.ErrNoRevealRunning)

	require.NoError(t, w.Shutdown(ctx))
	checker.Check(0)
}

func TestRevealWorker_ShutdownCancelsAndRefuses(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	ctx := context.Background()
	svc := newFakeService()
	w := newTestWorker(svc, &frameRecorder{}, time.Second)

	_, err := w.Begin(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, w.Shutdown(ctx))
	assert.Zero(t, svc.completed.Load())

	_, err = w.Begin(ctx, 7)
	assert.ErrorIs(t, err, ErrWorkerStopped)

	// a second shutdown is harmless
	require.NoError(t, w.Shutdown(ctx))
	checker.Check(0)
}

func TestNewRevealWorker_Defaults(t *testing.T) {
	w := NewRevealWorker(newFakeService(), nil, lottery.NewSource(1), 0, -1)
	assert.Equal(t, DefaultRevealDuration, w.duration)
	assert.Equal(t, DefaultRevealInterval, w.interval)
}
