package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgNoActiveSession      = "no drawing session is active"
	ErrMsgNoSavedSession       = "no saved drawing session"
	ErrMsgInvalidTransition    = "invalid stage transition"
	ErrMsgRoundAlreadyDrawn    = "current prize has already been drawn"
	ErrMsgRoundNotDrawn        = "current prize has not been drawn yet"
	ErrMsgPartitionViolation   = "remaining pool and winners do not partition the roster"
	ErrMsgInvalidStage         = "unknown stage"
	ErrMsgPrizeIndexOutOfRange = "prize index out of range"

	// Catalog and roster errors
	ErrMsgEmptyCatalog          = "prize catalog is empty"
	ErrMsgInvalidPrize          = "invalid prize"
	ErrMsgDuplicatePrizeID      = "duplicate prize id"
	ErrMsgEmptyRoster           = "roster is empty"
	ErrMsgDuplicateParticipant  = "duplicate participant"
	ErrMsgCatalogRosterMismatch = "prize counts do not sum to roster size"

	// Reveal errors
	ErrMsgRevealInProgress = "a reveal is already in progress"
	ErrMsgNoRevealRunning  = "no reveal is running"
	ErrMsgStalePrize       = "prize is not the current prize"

	// Storage errors
	ErrMsgStorageUnavailable = "session storage unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Session errors
	ErrNoActiveSession      = errors.New(ErrMsgNoActiveSession)
	ErrNoSavedSession       = errors.New(ErrMsgNoSavedSession)
	ErrInvalidTransition    = errors.New(ErrMsgInvalidTransition)
	ErrRoundAlreadyDrawn    = errors.New(ErrMsgRoundAlreadyDrawn)
	ErrRoundNotDrawn        = errors.New(ErrMsgRoundNotDrawn)
	ErrPartitionViolation   = errors.New(ErrMsgPartitionViolation)
	ErrInvalidStage         = errors.New(ErrMsgInvalidStage)
	ErrPrizeIndexOutOfRange = errors.New(ErrMsgPrizeIndexOutOfRange)

	// Catalog and roster errors
	ErrEmptyCatalog          = errors.New(ErrMsgEmptyCatalog)
	ErrInvalidPrize          = errors.New(ErrMsgInvalidPrize)
	ErrDuplicatePrizeID      = errors.New(ErrMsgDuplicatePrizeID)
	ErrEmptyRoster           = errors.New(ErrMsgEmptyRoster)
	ErrDuplicateParticipant  = errors.New(ErrMsgDuplicateParticipant)
	ErrCatalogRosterMismatch = errors.New(ErrMsgCatalogRosterMismatch)

	// Reveal errors
	ErrRevealInProgress = errors.New(ErrMsgRevealInProgress)
	ErrNoRevealRunning  = errors.New(ErrMsgNoRevealRunning)
	ErrStalePrize       = errors.New(ErrMsgStalePrize)

	// Storage errors
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
