// Package draw is the stage controller. It owns the single drawing session,
// serializes every transition and persists the result before returning.
package draw

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/LuckyDraw_Go/internal/catalog"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/event"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
	"github.com/osse101/LuckyDraw_Go/internal/session"
)

// Service defines the drawing session operations exposed to the presentation layer
type Service interface {
	Start(ctx context.Context) (Status, error)
	Resume(ctx context.Context) (Status, error)
	HasSavedSession(ctx context.Context) (bool, error)
	Continue(ctx context.Context) (Status, error)
	CompleteRound(ctx context.Context) ([]domain.Winner, error)
	CompletePrize(ctx context.Context, prizeID int) ([]domain.Winner, error)
	Advance(ctx context.Context) (Status, error)
	Review(ctx context.Context) (Status, error)
	Restart(ctx context.Context) (Status, error)

	Status(ctx context.Context) Status
	RevealTarget(ctx context.Context) (RevealTarget, error)
	RoundWinners(ctx context.Context) (RoundResult, error)
	Results(ctx context.Context) []domain.PrizeResult
	RoundInfo(ctx context.Context) (domain.RoundInfo, error)
	RemainingPool(ctx context.Context) []string
	Catalog() *catalog.Catalog
}

type service struct {
	mu      sync.Mutex
	store   repository.SessionStore
	catalog *catalog.Catalog
	bus     event.Bus
	src     lottery.Source
	mode    Mode
	state   *session.State
}

// NewService creates a stage controller at START. An unknown mode falls back to staged.
func NewService(store repository.SessionStore, cat *catalog.Catalog, bus event.Bus, src lottery.Source, mode Mode) Service {
	if !mode.Valid() {
		mode = ModeStaged
	}
	return &service{
		store:   store,
		catalog: cat,
		bus:     bus,
		src:     src,
		mode:    mode,
		state:   session.New(),
	}
}

// Start clears any saved session, shuffles the roster and begins at the first prize
func (s *service) Start(ctx context.Context) (Status, error) {
	return s.run(ctx, s.start)
}

// Resume adopts the saved session verbatim. Absent, unreadable or inconsistent
// sessions are purged and reported as ErrNoSavedSession.
func (s *service) Resume(ctx context.Context) (Status, error) {
	return s.run(ctx, s.resume)
}

// Continue leaves the round intro for the drawing screen
func (s *service) Continue(ctx context.Context) (Status, error) {
	return s.run(ctx, s.continueRound)
}

// Advance moves past a drawn prize
func (s *service) Advance(ctx context.Context) (Status, error) {
	return s.run(ctx, s.advance)
}

// Review leaves the final blessing for the consolidated results
func (s *service) Review(ctx context.Context) (Status, error) {
	return s.run(ctx, s.review)
}

// Restart discards the session from storage and memory
func (s *service) Restart(ctx context.Context) (Status, error) {
	return s.run(ctx, s.restart)
}

// CompleteRound commits the winners of the current prize
func (s *service) CompleteRound(ctx context.Context) ([]domain.Winner, error) {
	return s.complete(ctx, nil)
}

// CompletePrize commits the winners of the current prize only if it is prizeID.
// Reveals use it so a late completion can never land on a different prize.
func (s *service) CompletePrize(ctx context.Context, prizeID int) ([]domain.Winner, error) {
	return s.complete(ctx, &prizeID)
}

// HasSavedSession reports whether storage holds a session that could be resumed
func (s *service) HasSavedSession(ctx context.Context) (bool, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}
	return snap != nil, nil
}

func (s *service) run(ctx context.Context, fn func(context.Context) ([]event.Event, error)) (Status, error) {
	s.mu.Lock()
	evts, err := fn(ctx)
	if err != nil {
		s.mu.Unlock()
		return Status{}, err
	}
	status := s.statusLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, evts)
	return status, nil
}

func (s *service) complete(ctx context.Context, prizeID *int) ([]domain.Winner, error) {
	s.mu.Lock()
	winners, evts, err := s.completeRound(ctx, prizeID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.publish(ctx, evts)
	return winners, nil
}

func (s *service) start(ctx context.Context) ([]event.Event, error) {
	from := s.state.Stage()
	if from != domain.StageStart {
		return nil, s.reject(ctx, ActionStart, from)
	}
	if err := s.catalog.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextValidateSetup, err)
	}
	if err := s.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextClearSession, err)
	}

	prev := s.state.Snapshot()
	to := domain.StageRoundIntro
	if s.mode == ModeSimple {
		to = domain.StageDrawing
	}
	s.state = session.Begin(to, lottery.Shuffle(s.src, s.catalog.Roster()))
	if err := s.commit(ctx, prev); err != nil {
		return nil, err
	}

	snap := s.state.Snapshot()
	logger.FromContext(ctx).Info(LogMsgSessionStarted,
		LogFieldMode, s.mode,
		LogFieldStage, to,
		LogFieldRemaining, len(snap.RemainingMembers))

	return []event.Event{
		event.NewSessionEvent(event.SessionStarted, snap),
		event.NewStageChangedEvent(from, to, snap.CurrentPrizeIndex),
	}, nil
}

func (s *service) resume(ctx context.Context) ([]event.Event, error) {
	log := logger.FromContext(ctx)

	from := s.state.Stage()
	if from != domain.StageStart {
		return nil, s.reject(ctx, ActionResume, from)
	}

	snap, err := s.store.Load(ctx)
	if err != nil {
		log.Warn(LogMsgSavedSessionReadFail, LogFieldError, err)
		s.discard(ctx)
		return nil, fmt.Errorf("%w: %w", domain.ErrNoSavedSession, err)
	}
	if snap == nil {
		log.Info(LogMsgNoSavedSession)
		s.discard(ctx)
		return nil, domain.ErrNoSavedSession
	}
	if err := session.Check(*snap, s.catalog); err != nil {
		log.Warn(LogMsgSavedSessionRejected, LogFieldError, err)
		s.discard(ctx)
		return nil, fmt.Errorf("%w: %w", domain.ErrNoSavedSession, err)
	}

	s.state = session.FromSnapshot(*snap)
	log.Info(LogMsgSessionResumed,
		LogFieldStage, snap.Stage,
		LogFieldPrizeIndex, snap.CurrentPrizeIndex,
		LogFieldRemaining, len(snap.RemainingMembers))

	return []event.Event{
		event.NewSessionEvent(event.SessionResumed, *snap),
		event.NewStageChangedEvent(from, snap.Stage, snap.CurrentPrizeIndex),
	}, nil
}

func (s *service) continueRound(ctx context.Context) ([]event.Event, error) {
	from := s.state.Stage()
	if from != domain.StageRoundIntro {
		return nil, s.reject(ctx, ActionContinue, from)
	}
	return s.moveTo(ctx, from, domain.StageDrawing, nil)
}

func (s *service) completeRound(ctx context.Context, prizeID *int) ([]domain.Winner, []event.Event, error) {
	log := logger.FromContext(ctx)

	from := s.state.Stage()
	if from != domain.StageDrawing && from != domain.StageIntermediateResults {
		return nil, nil, s.reject(ctx, ActionCompleteRound, from)
	}

	idx := s.state.PrizeIndex()
	prize, err := s.catalog.Prize(idx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextCurrentPrize, err)
	}
	if prizeID != nil && *prizeID != prize.ID {
		return nil, nil, fmt.Errorf("%w: %d, current is %d", domain.ErrStalePrize, *prizeID, prize.ID)
	}
	if from == domain.StageIntermediateResults || s.state.Drawn(prize.ID) {
		log.Debug(LogMsgTransitionRejected, LogFieldAction, ActionCompleteRound, LogFieldPrizeID, prize.ID)
		return nil, nil, domain.ErrRoundAlreadyDrawn
	}

	prev := s.state.Snapshot()
	winners, err := s.state.ApplyRound(prize)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextCompleteRound, err)
	}
	to := from
	if s.mode == ModeStaged {
		to = domain.StageIntermediateResults
		s.state.SetStage(to)
	}
	if err := s.commit(ctx, prev); err != nil {
		return nil, nil, err
	}

	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}
	remaining := s.state.RemainingCount()
	log.Info(LogMsgRoundCompleted,
		LogFieldPrizeID, prize.ID,
		LogFieldPrizeIndex, idx,
		LogFieldWinners, len(winners),
		LogFieldRemaining, remaining)

	evts := []event.Event{
		event.NewRoundCompletedEvent(prize, idx, names, remaining, s.catalog.IsLast(idx)),
	}
	if to != from {
		evts = append(evts, event.NewStageChangedEvent(from, to, idx))
	}
	return winners, evts, nil
}

func (s *service) advance(ctx context.Context) ([]event.Event, error) {
	from := s.state.Stage()
	idx := s.state.PrizeIndex()

	switch from {
	case domain.StageIntermediateResults, domain.StageRoundIntro, domain.StageDrawing:
		prize, err := s.catalog.Prize(idx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextCurrentPrize, err)
		}
		if !s.state.Drawn(prize.ID) {
			logger.FromContext(ctx).Debug(LogMsgTransitionRejected,
				LogFieldAction, ActionAdvance,
				LogFieldPrizeID, prize.ID)
			return nil, domain.ErrRoundNotDrawn
		}
	default:
		return nil, s.reject(ctx, ActionAdvance, from)
	}

	if s.catalog.IsLast(idx) {
		to := domain.StageFinalBlessing
		if s.mode == ModeSimple {
			to = domain.StageResults
		}
		return s.moveTo(ctx, from, to, nil)
	}

	to := domain.StageDrawing
	if s.mode == ModeStaged && s.catalog.RoundChanged(idx) {
		to = domain.StageRoundIntro
	}
	return s.moveTo(ctx, from, to, s.state.NextPrize)
}

func (s *service) review(ctx context.Context) ([]event.Event, error) {
	from := s.state.Stage()
	if from != domain.StageFinalBlessing {
		return nil, s.reject(ctx, ActionReview, from)
	}
	return s.moveTo(ctx, from, domain.StageResults, nil)
}

func (s *service) restart(ctx context.Context) ([]event.Event, error) {
	if err := s.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextClearSession, err)
	}

	from := s.state.Stage()
	s.state.Reset()
	snap := s.state.Snapshot()
	logger.FromContext(ctx).Info(LogMsgSessionRestarted, LogFieldFrom, from)

	return []event.Event{
		event.NewSessionEvent(event.SessionRestarted, snap),
		event.NewStageChangedEvent(from, domain.StageStart, 0),
	}, nil
}

// moveTo applies an optional mutation plus a stage change and persists both
func (s *service) moveTo(ctx context.Context, from, to domain.Stage, mutate func()) ([]event.Event, error) {
	prev := s.state.Snapshot()
	if mutate != nil {
		mutate()
	}
	s.state.SetStage(to)
	if err := s.commit(ctx, prev); err != nil {
		return nil, err
	}

	idx := s.state.PrizeIndex()
	logger.FromContext(ctx).Info(LogMsgStageChanged,
		LogFieldFrom, from,
		LogFieldTo, to,
		LogFieldPrizeIndex, idx)

	return []event.Event{event.NewStageChangedEvent(from, to, idx)}, nil
}

// commit persists the current state, restoring prev when the write fails
func (s *service) commit(ctx context.Context, prev domain.SessionState) error {
	if err := s.store.Save(ctx, s.state.Snapshot()); err != nil {
		s.state.Restore(prev)
		logger.FromContext(ctx).Error(LogMsgSaveRolledBack,
			LogFieldStage, prev.Stage,
			LogFieldError, err)
		return fmt.Errorf("%s: %w", ErrContextSaveSession, err)
	}
	return nil
}

func (s *service) reject(ctx context.Context, action string, from domain.Stage) error {
	logger.FromContext(ctx).Debug(LogMsgTransitionRejected,
		LogFieldAction, action,
		LogFieldStage, from)
	return fmt.Errorf("%w: %s from %s", domain.ErrInvalidTransition, action, from)
}

func (s *service) discard(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgClearAfterRejectFail, LogFieldError, err)
	}
}

func (s *service) publish(ctx context.Context, evts []event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range evts {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed,
				LogFieldEventType, evt.Type,
				LogFieldError, err)
		}
	}
}
