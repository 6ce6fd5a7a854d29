package handler

import (
	"context"
	"net/http"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/draw"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/worker"
)

// RevealController runs the reveal animation for the current prize
type RevealController interface {
	Begin(ctx context.Context, prizeID int) (worker.RevealStatus, error)
	Stop(ctx context.Context) ([]domain.Winner, error)
	Cancel(ctx context.Context) bool
	Active() (worker.RevealStatus, bool)
}

// DrawHandler exposes the drawing session over HTTP
type DrawHandler struct {
	service draw.Service
	reveals RevealController
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(service draw.Service, reveals RevealController) *DrawHandler {
	return &DrawHandler{service: service, reveals: reveals}
}

// StatusResponse is the session view plus the running reveal, if any
type StatusResponse struct {
	draw.Status
	Reveal *worker.RevealStatus `json:"reveal,omitempty"`
}

// CatalogResponse describes what is being drawn
type CatalogResponse struct {
	Prizes     []domain.Prize `json:"prizes"`
	Rounds     []int          `json:"rounds"`
	RosterSize int            `json:"roster_size"`
}

// RevealRequest names the prize the operator sees on screen
type RevealRequest struct {
	PrizeID int `json:"prize_id" validate:"required,gt=0"`
}

// RevealStopResponse carries the committed winners
type RevealStopResponse struct {
	Message string          `json:"message"`
	Winners []domain.Winner `json:"winners"`
}

// ResultsResponse groups every winner by prize
type ResultsResponse struct {
	Results []domain.PrizeResult `json:"results"`
}

// HandleStatus returns the current stage view
func (h *DrawHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.status(r.Context()))
}

// HandleCatalog returns the prize catalog and roster size
func (h *DrawHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := h.service.Catalog()
	respondJSON(w, http.StatusOK, CatalogResponse{
		Prizes:     cat.Prizes(),
		Rounds:     cat.Rounds(),
		RosterSize: cat.RosterSize(),
	})
}

// HandleStart begins a new drawing
func (h *DrawHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, ActionStart, h.service.Start)
}

// HandleResume continues the saved drawing
func (h *DrawHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, ActionResume, h.service.Resume)
}

// HandleContinue leaves the round intro
func (h *DrawHandler) HandleContinue(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, ActionContinue, h.service.Continue)
}

// HandleAdvance moves past the drawn prize
func (h *DrawHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, ActionAdvance, h.service.Advance)
}

// HandleReview shows the consolidated results
func (h *DrawHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, ActionReview, h.service.Review)
}

// HandleRestart cancels any reveal and discards the session
func (h *DrawHandler) HandleRestart(w http.ResponseWriter, r *http.Request) {
	h.reveals.Cancel(r.Context())
	h.transition(w, r, ActionRestart, h.service.Restart)
}

// HandleReveal starts the reveal animation for the current prize
func (h *DrawHandler) HandleReveal(w http.ResponseWriter, r *http.Request) {
	var req RevealRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionReveal); err != nil {
		return
	}

	status, err := h.reveals.Begin(r.Context(), req.PrizeID)
	if err != nil {
		h.fail(w, r, ActionReveal, err)
		return
	}

	respondJSON(w, http.StatusAccepted, DataResponse{Message: MsgRevealStarted, Data: status})
}

// HandleRevealStop completes the running reveal now
func (h *DrawHandler) HandleRevealStop(w http.ResponseWriter, r *http.Request) {
	winners, err := h.reveals.Stop(r.Context())
	if err != nil {
		h.fail(w, r, ActionRevealStop, err)
		return
	}

	respondJSON(w, http.StatusOK, RevealStopResponse{Message: MsgRevealStopped, Winners: winners})
}

// HandleRound returns the winners of the current prize
func (h *DrawHandler) HandleRound(w http.ResponseWriter, r *http.Request) {
	round, err := h.service.RoundWinners(r.Context())
	if err != nil {
		h.fail(w, r, ActionRound, err)
		return
	}
	respondJSON(w, http.StatusOK, round)
}

// HandleRoundInfo describes the round of the current prize
func (h *DrawHandler) HandleRoundInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.RoundInfo(r.Context())
	if err != nil {
		h.fail(w, r, ActionRoundInfo, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// HandleResults returns every winner grouped by prize
func (h *DrawHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ResultsResponse{Results: h.service.Results(r.Context())})
}

func (h *DrawHandler) transition(w http.ResponseWriter, r *http.Request, action string, fn func(context.Context) (draw.Status, error)) {
	if _, err := fn(r.Context()); err != nil {
		h.fail(w, r, action, err)
		return
	}
	respondJSON(w, http.StatusOK, h.status(r.Context()))
}

func (h *DrawHandler) status(ctx context.Context) StatusResponse {
	resp := StatusResponse{Status: h.service.Status(ctx)}
	if reveal, ok := h.reveals.Active(); ok {
		resp.Reveal = &reveal
	}
	return resp
}

func (h *DrawHandler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(LogMsgActionFailed, "action", action, "error", err)
	} else {
		log.Warn(LogMsgActionRejected, "action", action, "error", err)
	}

	respondError(w, statusCode, userMsg)
}

var _ RevealController = (*worker.RevealWorker)(nil)
