package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"
)

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."

	// Session messages
	ErrMsgNoActiveSessionError   = "No drawing is in progress"
	ErrMsgNoSavedSessionError    = "There is no saved drawing to resume"
	ErrMsgInvalidTransitionError = "That action is not available at this stage"
	ErrMsgRoundAlreadyDrawnError = "This prize has already been drawn"
	ErrMsgRoundNotDrawnError     = "Draw the current prize before moving on"

	// Reveal messages
	ErrMsgRevealInProgressError = "A reveal is already running"
	ErrMsgNoRevealRunningError  = "No reveal is running"
	ErrMsgStalePrizeError       = "That prize is not the one being drawn"

	// Setup messages
	ErrMsgCatalogSetupError = "The prize catalog does not match the participant list"
)

// Success messages for API responses
const (
	MsgSessionStarted   = "Drawing started"
	MsgSessionResumed   = "Drawing resumed"
	MsgSessionRestarted = "Drawing reset"
	MsgRevealStarted    = "Reveal started"
	MsgRevealStopped    = "Reveal stopped"
)

// Log messages
const (
	LogMsgActionFailed    = "Draw action failed"
	LogMsgActionRejected  = "Draw action rejected"
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)

// Draw action names used in logs
const (
	ActionStatus     = "status"
	ActionCatalog    = "catalog"
	ActionStart      = "start"
	ActionResume     = "resume"
	ActionContinue   = "continue"
	ActionReveal     = "reveal"
	ActionRevealStop = "reveal_stop"
	ActionAdvance    = "advance"
	ActionReview     = "review"
	ActionRestart    = "restart"
	ActionRound      = "round"
	ActionRoundInfo  = "round_info"
)

// maxRequestBody caps decoded request bodies
const maxRequestBody = 4 << 10
