package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/event"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

func TestEventMetricsCollector_RoundCompleted(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	prize := domain.Prize{ID: 901, Name: "Kettle", Count: 2, Round: 1, Group: domain.GroupA}
	rounds := RoundsCompleted.WithLabelValues("901")
	before := testutil.ToFloat64(rounds)
	winnersBefore := testutil.ToFloat64(WinnersDrawn)

	err := bus.Publish(context.Background(), event.NewRoundCompletedEvent(prize, 0, []string{"a", "b"}, 5, false))
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(rounds))
	assert.Equal(t, winnersBefore+2, testutil.ToFloat64(WinnersDrawn))
	assert.Equal(t, float64(5), testutil.ToFloat64(RemainingPool))
}

func TestEventMetricsCollector_StageChanged(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	c := StageTransitions.WithLabelValues(string(domain.StageFinalBlessing), string(domain.StageResults))
	before := testutil.ToFloat64(c)

	evt := event.NewStageChangedEvent(domain.StageFinalBlessing, domain.StageResults, 3)
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestEventMetricsCollector_UnknownPayload(t *testing.T) {
	c := NewEventMetricsCollector()
	published := EventsPublished.WithLabelValues("custom")
	before := testutil.ToFloat64(published)

	err := c.HandleEvent(context.Background(), event.Event{Type: "custom", Payload: "raw"})
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(published))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	c := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/things/{id}", "418")
	before := testutil.ToFloat64(c)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/things/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

type failingStore struct{ err error }

func (f failingStore) Save(context.Context, domain.SessionState) error { return f.err }
func (f failingStore) Load(context.Context) (*domain.SessionState, error) { return nil, f.err }
func (f failingStore) Clear(context.Context) error { return f.err }

var _ repository.SessionStore = failingStore{}

func TestInstrumentedStore_CountsOutcomes(t *testing.T) {
	ctx := context.Background()
	okSaves := StoreOperations.WithLabelValues(OperationSave, OutcomeOK)
	badLoads := StoreOperations.WithLabelValues(OperationLoad, OutcomeError)
	okBefore := testutil.ToFloat64(okSaves)
	badBefore := testutil.ToFloat64(badLoads)

	good := InstrumentStore(failingStore{})
	require.NoError(t, good.Save(ctx, domain.SessionState{Stage: domain.StageDrawing}))

	bad := InstrumentStore(failingStore{err: errors.New("disk gone")})
	_, err := bad.Load(ctx)
	require.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(okSaves))
	assert.Equal(t, badBefore+1, testutil.ToFloat64(badLoads))
	assert.NoError(t, bad.Ping(ctx), "stores without Ping are always reachable")
}
