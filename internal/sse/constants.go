package sse

import (
	"time"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	EventTypeSessionStarted   = domain.EventTypeSessionStarted
	EventTypeSessionResumed   = domain.EventTypeSessionResumed
	EventTypeSessionRestarted = domain.EventTypeSessionRestarted
	EventTypeStageChanged     = domain.EventTypeStageChanged
	EventTypeRoundCompleted   = domain.EventTypeRoundCompleted

	// EventTypeRevealFrame carries one cosmetic frame of the running reveal
	EventTypeRevealFrame = domain.EventTypeRevealFrame

	// EventTypeConnected is sent once when a client attaches
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgBadPayload         = "Unexpected event payload for SSE bridge"
)
