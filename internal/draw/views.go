package draw

import (
	"context"
	"fmt"

	"github.com/osse101/LuckyDraw_Go/internal/catalog"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
)

// Status is what the presentation layer renders for the current stage
type Status struct {
	Stage           domain.Stage  `json:"stage"`
	Mode            Mode          `json:"mode"`
	PrizeIndex      int           `json:"prize_index"`
	PrizeCount      int           `json:"prize_count"`
	Prize           *domain.Prize `json:"prize,omitempty"`
	Round           int           `json:"round,omitempty"`
	PrizeDrawn      bool          `json:"prize_drawn"`
	IsLast          bool          `json:"is_last"`
	Placeholders    int           `json:"placeholders"`
	PlaceholderText string        `json:"placeholder_text,omitempty"`
	Remaining       int           `json:"remaining"`
	Winners         int           `json:"winners"`
	HasSavedSession bool          `json:"has_saved_session"`
}

// RoundResult lists the winners of the current prize
type RoundResult struct {
	Prize   domain.Prize `json:"prize"`
	Winners []string     `json:"winners"`
	IsLast  bool         `json:"is_last"`
}

// RevealTarget is frozen when a reveal starts
type RevealTarget struct {
	Prize      domain.Prize
	PrizeIndex int
	Pool       []string
}

// Status returns the current view. At START it also checks storage for a
// resumable session.
func (s *service) Status(ctx context.Context) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked(ctx)
}

func (s *service) statusLocked(ctx context.Context) Status {
	st := Status{
		Stage:      s.state.Stage(),
		Mode:       s.mode,
		PrizeIndex: s.state.PrizeIndex(),
		PrizeCount: s.catalog.Len(),
		Remaining:  s.state.RemainingCount(),
		Winners:    len(s.state.Winners()),
	}

	if st.Stage == domain.StageStart {
		saved, err := s.HasSavedSession(ctx)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgSavedSessionReadFail, LogFieldError, err)
		}
		st.HasSavedSession = saved
		return st
	}

	if !st.Stage.DrawingRelated() {
		return st
	}

	prize, err := s.catalog.Prize(st.PrizeIndex)
	if err != nil {
		return st
	}
	st.Prize = &prize
	st.Round = prize.Round
	st.PrizeDrawn = s.state.Drawn(prize.ID)
	st.IsLast = s.catalog.IsLast(st.PrizeIndex)
	if st.Stage == domain.StageDrawing && !st.PrizeDrawn {
		st.Placeholders = prize.Count
		st.PlaceholderText = domain.PlaceholderLabel
	}
	return st
}

// RevealTarget freezes the prize and pool a reveal animates over
func (s *service) RevealTarget(ctx context.Context) (RevealTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stage := s.state.Stage()
	if stage != domain.StageDrawing {
		return RevealTarget{}, s.reject(ctx, ActionCompleteRound, stage)
	}
	idx := s.state.PrizeIndex()
	prize, err := s.catalog.Prize(idx)
	if err != nil {
		return RevealTarget{}, fmt.Errorf("%s: %w", ErrContextCurrentPrize, err)
	}
	if s.state.Drawn(prize.ID) {
		return RevealTarget{}, domain.ErrRoundAlreadyDrawn
	}
	return RevealTarget{Prize: prize, PrizeIndex: idx, Pool: s.state.Remaining()}, nil
}

// RoundWinners returns the winners of the current prize and whether it is the last one
func (s *service) RoundWinners(ctx context.Context) (RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage() == domain.StageStart {
		return RoundResult{}, domain.ErrNoActiveSession
	}
	idx := s.state.PrizeIndex()
	prize, err := s.catalog.Prize(idx)
	if err != nil {
		return RoundResult{}, fmt.Errorf("%s: %w", ErrContextCurrentPrize, err)
	}
	return RoundResult{
		Prize:   prize,
		Winners: s.state.WinnersOf(prize.ID),
		IsLast:  s.catalog.IsLast(idx),
	}, nil
}

// Results groups every winner by prize in catalog order. Prizes not yet drawn are omitted.
func (s *service) Results(ctx context.Context) []domain.PrizeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := []domain.PrizeResult{}
	for _, prize := range s.catalog.Prizes() {
		names := s.state.WinnersOf(prize.ID)
		if len(names) == 0 {
			continue
		}
		results = append(results, domain.PrizeResult{
			Prize:   prize,
			Winners: names,
			Total:   len(names),
		})
	}
	return results
}

// RoundInfo describes the round of the current prize
func (s *service) RoundInfo(ctx context.Context) (domain.RoundInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Stage() == domain.StageStart {
		return domain.RoundInfo{}, domain.ErrNoActiveSession
	}
	return s.catalog.RoundOf(s.state.PrizeIndex())
}

// RemainingPool returns the undrawn participants in pool order
func (s *service) RemainingPool(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Remaining()
}

// Catalog returns the prize catalog the session draws from
func (s *service) Catalog() *catalog.Catalog {
	return s.catalog
}
