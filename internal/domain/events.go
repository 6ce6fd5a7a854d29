package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "round.completed")
const (
	// EventTypeSessionStarted is published after a fresh session is shuffled and saved
	EventTypeSessionStarted = "session.started"

	// EventTypeSessionResumed is published after a saved session is restored
	EventTypeSessionResumed = "session.resumed"

	// EventTypeSessionRestarted is published when the operator returns to START
	EventTypeSessionRestarted = "session.restarted"

	// EventTypeStageChanged is published on every stage transition
	EventTypeStageChanged = "stage.changed"

	// EventTypeRoundCompleted is published once a prize's winners are committed
	EventTypeRoundCompleted = "round.completed"

	// EventTypeRevealFrame is pushed to the UI on every reveal tick. It never goes through the bus.
	EventTypeRevealFrame = "reveal.frame"
)
