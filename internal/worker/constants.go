package worker

import (
	"errors"
	"time"
)

// ============================================================================
// Reveal Timing
// ============================================================================

// Defaults used when the configured reveal timing is not positive
const (
	DefaultRevealDuration = 3 * time.Second
	DefaultRevealInterval = 60 * time.Millisecond
)

// RevealWorkerName identifies the reveal worker in shutdown logs
const RevealWorkerName = "reveal worker"

// ErrWorkerStopped is returned when a reveal is requested after shutdown began
var ErrWorkerStopped = errors.New("reveal worker is shut down")

// ============================================================================
// Log Messages - Base Worker
// ============================================================================

const (
	LogMsgWorkerShuttingDown     = "Shutting down worker"
	LogMsgWorkerTimerCancelled   = "Cancelled pending worker timer"
	LogMsgWorkerShutdownComplete = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout  = "Worker shutdown timeout, some executions may still be running"
)

// ============================================================================
// Log Messages - Reveal Worker
// ============================================================================

const (
	LogMsgRevealStarted       = "Reveal started"
	LogMsgRevealStoppedEarly  = "Reveal stopped early"
	LogMsgRevealDeadline      = "Reveal deadline reached, forcing completion"
	LogMsgRevealCancelled     = "Reveal cancelled"
	LogMsgRevealCompleted     = "Reveal completed"
	LogMsgRevealCompleteFail  = "Failed to complete reveal"
	LogMsgRevealCancelOnEvent = "Cancelling reveal after session restart"
)

// Log field keys
const (
	LogFieldWorker   = "worker"
	LogFieldTimerID  = "timer_id"
	LogFieldRevealID = "reveal_id"
	LogFieldPrizeID  = "prize_id"
	LogFieldWinners  = "winners"
	LogFieldElapsed  = "elapsed"
	LogFieldDuration = "duration"
	LogFieldError    = "error"
)
