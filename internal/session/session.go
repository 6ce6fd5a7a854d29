// Package session owns the in-memory drawing record and the named transitions
// allowed to change it.
package session

import (
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
)

// State is the authoritative session record. It is not safe for concurrent
// use; the stage controller serializes access.
type State struct {
	st domain.SessionState
}

// New returns a state at START with nothing drawn.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Begin starts a fresh session over an already shuffled pool.
func Begin(stage domain.Stage, shuffled []string) *State {
	return &State{st: domain.SessionState{
		Stage:            stage,
		RemainingMembers: append([]string{}, shuffled...),
		Winners:          []domain.Winner{},
	}}
}

// FromSnapshot adopts a restored snapshot verbatim.
func FromSnapshot(snap domain.SessionState) *State {
	return &State{st: snap.Clone()}
}

// Snapshot returns a deep copy suitable for persisting or rolling back.
func (s *State) Snapshot() domain.SessionState {
	return s.st.Clone()
}

// Restore replaces the state with a previously taken snapshot.
func (s *State) Restore(snap domain.SessionState) {
	s.st = snap.Clone()
}

// Reset returns to START with an empty record.
func (s *State) Reset() {
	s.st = domain.SessionState{
		Stage:            domain.StageStart,
		RemainingMembers: []string{},
		Winners:          []domain.Winner{},
	}
}

// Stage is the current stage.
func (s *State) Stage() domain.Stage { return s.st.Stage }

// PrizeIndex is the catalog index of the current prize.
func (s *State) PrizeIndex() int { return s.st.CurrentPrizeIndex }

// Remaining returns a copy of the undrawn pool in its persisted order.
func (s *State) Remaining() []string {
	return append([]string{}, s.st.RemainingMembers...)
}

// RemainingCount is the size of the undrawn pool.
func (s *State) RemainingCount() int { return len(s.st.RemainingMembers) }

// Winners returns a copy of every winner so far, in draw order.
func (s *State) Winners() []domain.Winner {
	return append([]domain.Winner{}, s.st.Winners...)
}

// WinnersOf returns the names that won the given prize.
func (s *State) WinnersOf(prizeID int) []string {
	names := []string{}
	for _, w := range s.st.Winners {
		if w.PrizeID == prizeID {
			names = append(names, w.Name)
		}
	}
	return names
}

// Drawn reports whether the prize already has winners recorded.
func (s *State) Drawn(prizeID int) bool {
	for _, w := range s.st.Winners {
		if w.PrizeID == prizeID {
			return true
		}
	}
	return false
}

// SetStage moves to stage without touching the pool.
func (s *State) SetStage(stage domain.Stage) {
	s.st.Stage = stage
}

// NextPrize moves the index forward by one.
func (s *State) NextPrize() {
	s.st.CurrentPrizeIndex++
}

// ApplyRound takes the first prize.Count members of the pool as winners of
// prize and removes them from the pool in one step.
func (s *State) ApplyRound(prize domain.Prize) ([]domain.Winner, error) {
	if s.Drawn(prize.ID) {
		return nil, domain.ErrRoundAlreadyDrawn
	}

	taken, rest := lottery.Take(s.st.RemainingMembers, prize.Count)
	batch := make([]domain.Winner, len(taken))
	for i, name := range taken {
		batch[i] = domain.Winner{Name: name, PrizeName: prize.Name, PrizeID: prize.ID}
	}

	s.st.Winners = append(s.st.Winners, batch...)
	s.st.RemainingMembers = rest
	return batch, nil
}
