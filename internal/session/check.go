package session

import (
	"fmt"

	"github.com/osse101/LuckyDraw_Go/internal/catalog"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// Check verifies a snapshot against the catalog it claims to belong to.
// A restored session must pass before it is adopted.
func Check(snap domain.SessionState, cat *catalog.Catalog) error {
	if !snap.Stage.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStage, snap.Stage)
	}

	idx := snap.CurrentPrizeIndex
	if idx < 0 || idx >= cat.Len() {
		return fmt.Errorf("%w: %d", domain.ErrPrizeIndexOutOfRange, idx)
	}

	if err := checkPartition(snap, cat.Roster()); err != nil {
		return err
	}
	if err := checkStageProgress(snap, cat); err != nil {
		return err
	}
	return checkBatches(snap, cat)
}

// checkStageProgress requires the stages that follow a reveal to sit on a
// drawn prize, and the closing stages to sit on the last one with an empty pool.
func checkStageProgress(snap domain.SessionState, cat *catalog.Catalog) error {
	switch snap.Stage {
	case domain.StageIntermediateResults, domain.StageFinalBlessing, domain.StageResults:
	default:
		return nil
	}

	prize, err := cat.Prize(snap.CurrentPrizeIndex)
	if err != nil {
		return err
	}
	got := 0
	for _, w := range snap.Winners {
		if w.PrizeID == prize.ID {
			got++
		}
	}
	if got != prize.Count {
		return fmt.Errorf("%w: %s with prize %d undrawn", domain.ErrPartitionViolation, snap.Stage, prize.ID)
	}

	if snap.Stage == domain.StageIntermediateResults {
		return nil
	}
	if snap.CurrentPrizeIndex != cat.Len()-1 {
		return fmt.Errorf("%w: %s at prize index %d of %d", domain.ErrPartitionViolation, snap.Stage, snap.CurrentPrizeIndex, cat.Len())
	}
	if len(snap.RemainingMembers) > 0 {
		return fmt.Errorf("%w: %s with %d participants remaining", domain.ErrPartitionViolation, snap.Stage, len(snap.RemainingMembers))
	}
	return nil
}

// checkPartition requires remaining and winners to cover the roster exactly once.
func checkPartition(snap domain.SessionState, roster []string) error {
	want := make(map[string]bool, len(roster))
	for _, name := range roster {
		want[name] = false
	}

	mark := func(name string) error {
		used, known := want[name]
		if !known {
			return fmt.Errorf("%w: unknown participant %q", domain.ErrPartitionViolation, name)
		}
		if used {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateParticipant, name)
		}
		want[name] = true
		return nil
	}

	for _, name := range snap.RemainingMembers {
		if err := mark(name); err != nil {
			return err
		}
	}
	for _, w := range snap.Winners {
		if err := mark(w.Name); err != nil {
			return err
		}
	}

	if len(snap.RemainingMembers)+len(snap.Winners) != len(roster) {
		return fmt.Errorf("%w: %d of %d participants accounted for",
			domain.ErrPartitionViolation, len(snap.RemainingMembers)+len(snap.Winners), len(roster))
	}
	return nil
}

// checkBatches requires every prize before the current one to be fully drawn,
// the current one to be fully drawn or untouched and later ones untouched.
func checkBatches(snap domain.SessionState, cat *catalog.Catalog) error {
	counts := make(map[int]int)
	for _, w := range snap.Winners {
		if cat.IndexOf(w.PrizeID) < 0 {
			return fmt.Errorf("%w: unknown prize %d", domain.ErrPartitionViolation, w.PrizeID)
		}
		counts[w.PrizeID]++
	}

	for i, p := range cat.Prizes() {
		got := counts[p.ID]
		switch {
		case i < snap.CurrentPrizeIndex && got != p.Count:
			return fmt.Errorf("%w: prize %d has %d of %d winners", domain.ErrPartitionViolation, p.ID, got, p.Count)
		case i == snap.CurrentPrizeIndex && got != 0 && got != p.Count:
			return fmt.Errorf("%w: prize %d partially drawn", domain.ErrPartitionViolation, p.ID)
		case i > snap.CurrentPrizeIndex && got != 0:
			return fmt.Errorf("%w: prize %d drawn ahead of index", domain.ErrPartitionViolation, p.ID)
		}
	}
	return nil
}
