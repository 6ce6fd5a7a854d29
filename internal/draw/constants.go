package draw

// Mode selects how many stages a session walks through
type Mode string

const (
	// ModeStaged runs round intros, intermediate results and the final blessing
	ModeStaged Mode = "staged"
	// ModeSimple goes straight from START to DRAWING and ends at RESULTS
	ModeSimple Mode = "simple"
)

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeStaged || m == ModeSimple
}

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextClearSession  = "failed to clear saved session"
	ErrContextSaveSession   = "failed to save session"
	ErrContextValidateSetup = "catalog does not match roster"
	ErrContextCurrentPrize  = "failed to resolve current prize"
	ErrContextCompleteRound = "failed to complete round"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSessionStarted       = "Drawing session started"
	LogMsgSessionResumed       = "Drawing session resumed"
	LogMsgSessionRestarted     = "Drawing session restarted"
	LogMsgNoSavedSession       = "No saved session to resume"
	LogMsgSavedSessionRejected = "Saved session is inconsistent with the catalog, discarding"
	LogMsgSavedSessionReadFail = "Failed to read saved session, discarding"
	LogMsgStageChanged         = "Stage changed"
	LogMsgRoundCompleted       = "Round completed"
	LogMsgSaveRolledBack       = "Failed to persist transition, rolled back"
	LogMsgTransitionRejected   = "Transition rejected"
	LogMsgPublishFailed        = "Failed to publish event"
	LogMsgClearAfterRejectFail = "Failed to clear rejected session"
)

// Log field keys
const (
	LogFieldStage      = "stage"
	LogFieldFrom       = "from"
	LogFieldTo         = "to"
	LogFieldPrizeIndex = "prize_index"
	LogFieldPrizeID    = "prize_id"
	LogFieldWinners    = "winners"
	LogFieldRemaining  = "remaining"
	LogFieldAction     = "action"
	LogFieldError      = "error"
	LogFieldMode       = "mode"
	LogFieldEventType  = "event_type"
)

// Action names used in logs and rejected-transition errors
const (
	ActionStart         = "start"
	ActionResume        = "resume"
	ActionContinue      = "continue"
	ActionCompleteRound = "complete_round"
	ActionAdvance       = "advance"
	ActionReview        = "review"
	ActionRestart       = "restart"
)
