package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/event"
	"github.com/osse101/LuckyDraw_Go/internal/testing/leaktest"
)

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	hub := NewHub()
	hub.Start()

	a := hub.Register(nil)
	b := hub.Register(nil)
	waitForClients(t, hub, 2)

	hub.Broadcast(EventTypeRevealFrame, RevealFramePayload{PrizeID: 1, Names: []string{"Ada"}})

	for _, c := range []*Client{a, b} {
		evt := receive(t, c)
		assert.Equal(t, EventTypeRevealFrame, evt.Type)
		assert.NotEmpty(t, evt.ID)
		assert.Equal(t, []string{"Ada"}, evt.Payload.(RevealFramePayload).Names)
	}

	hub.Stop()
	checker.Check(1)
}

func TestHub_FilterByType(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	onlyRounds := hub.Register([]string{EventTypeRoundCompleted})
	waitForClients(t, hub, 1)

	hub.Broadcast(EventTypeRevealFrame, nil)
	hub.Broadcast(EventTypeRoundCompleted, nil)

	evt := receive(t, onlyRounds)
	assert.Equal(t, EventTypeRoundCompleted, evt.Type)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(nil)
	waitForClients(t, hub, 1)
	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)

	_, open := <-c.EventChannel
	assert.False(t, open)
}

func TestHub_StopTwice(t *testing.T) {
	hub := NewHub()
	hub.Start()
	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Stop()
	hub.Stop()

	_, open := <-c.EventChannel
	assert.False(t, open)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: EventTypeStageChanged, Payload: map[string]string{"to": "DRAWING"}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: stage.changed\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "}\n\n"))
	assert.Contains(t, s, `"to":"DRAWING"`)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types="+EventTypeRoundCompleted, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEventLine := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEventLine())

	waitForClients(t, hub, 1)
	hub.Broadcast(EventTypeRoundCompleted, RoundCompletedPayload{PrizeID: 3})
	assert.Equal(t, EventTypeRoundCompleted, readEventLine())
}

func TestSubscriber_BridgesBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	prize := domain.Prize{ID: 9, Name: "Bike", Count: 1, Round: 1, Group: domain.GroupA}
	require.NoError(t, bus.Publish(context.Background(), event.NewRoundCompletedEvent(prize, 0, []string{"Ada"}, 4, false)))

	evt := receive(t, c)
	assert.Equal(t, EventTypeRoundCompleted, evt.Type)
	payload := evt.Payload.(RoundCompletedPayload)
	assert.Equal(t, 9, payload.PrizeID)
	assert.Equal(t, "Bike", payload.PrizeName)
	assert.Equal(t, []string{"Ada"}, payload.Winners)

	require.NoError(t, bus.Publish(context.Background(), event.NewStageChangedEvent(domain.StageDrawing, domain.StageIntermediateResults, 0)))
	evt = receive(t, c)
	assert.Equal(t, EventTypeStageChanged, evt.Type)
	assert.Equal(t, domain.StageIntermediateResults, evt.Payload.(StageChangedPayload).To)

	require.NoError(t, bus.Publish(context.Background(), event.NewSessionEvent(event.SessionRestarted, domain.SessionState{Stage: domain.StageStart})))
	evt = receive(t, c)
	assert.Equal(t, EventTypeSessionRestarted, evt.Type)
}
