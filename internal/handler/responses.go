package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/worker"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded before any header is written so an encoding failure
// still produces a proper 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages an operator can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoSavedSession):
		return http.StatusNotFound, ErrMsgNoSavedSessionError
	case errors.Is(err, domain.ErrNoActiveSession):
		return http.StatusConflict, ErrMsgNoActiveSessionError
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgInvalidTransitionError
	case errors.Is(err, domain.ErrRoundAlreadyDrawn):
		return http.StatusConflict, ErrMsgRoundAlreadyDrawnError
	case errors.Is(err, domain.ErrRoundNotDrawn):
		return http.StatusConflict, ErrMsgRoundNotDrawnError
	case errors.Is(err, domain.ErrRevealInProgress):
		return http.StatusConflict, ErrMsgRevealInProgressError
	case errors.Is(err, domain.ErrNoRevealRunning):
		return http.StatusConflict, ErrMsgNoRevealRunningError
	case errors.Is(err, domain.ErrStalePrize):
		return http.StatusConflict, ErrMsgStalePrizeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrEmptyCatalog),
		errors.Is(err, domain.ErrInvalidPrize),
		errors.Is(err, domain.ErrDuplicatePrizeID),
		errors.Is(err, domain.ErrEmptyRoster),
		errors.Is(err, domain.ErrDuplicateParticipant),
		errors.Is(err, domain.ErrCatalogRosterMismatch):
		return http.StatusInternalServerError, ErrMsgCatalogSetupError
	case errors.Is(err, domain.ErrStorageUnavailable),
		errors.Is(err, worker.ErrWorkerStopped):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
