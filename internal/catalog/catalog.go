// Package catalog loads the prize catalog and participant roster and answers
// positional questions about prizes and rounds.
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

var validate = validator.New()

// Catalog is the ordered, immutable prize list plus the de-duplicated roster.
// Consecutive prizes sharing a round number form one round.
type Catalog struct {
	prizes []domain.Prize
	roster []string
}

// New normalizes the roster and validates both inputs together.
func New(prizes []domain.Prize, roster []string) (*Catalog, error) {
	names, _, _ := NormalizeRoster(roster)
	c := &Catalog{
		prizes: append([]domain.Prize(nil), prizes...),
		roster: names,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks prize fields, id uniqueness and that prize counts sum to the roster size.
func (c *Catalog) Validate() error {
	if len(c.prizes) == 0 {
		return domain.ErrEmptyCatalog
	}
	if len(c.roster) == 0 {
		return domain.ErrEmptyRoster
	}

	seen := make(map[int]struct{}, len(c.prizes))
	total := 0
	for i, p := range c.prizes {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("%w: index %d: %v", domain.ErrInvalidPrize, i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %d", domain.ErrDuplicatePrizeID, p.ID)
		}
		seen[p.ID] = struct{}{}
		total += p.Count
	}

	if total != len(c.roster) {
		return fmt.Errorf("%w: prizes=%d roster=%d", domain.ErrCatalogRosterMismatch, total, len(c.roster))
	}
	return nil
}

// Prizes returns a copy of the prize list in catalog order.
func (c *Catalog) Prizes() []domain.Prize {
	return append([]domain.Prize(nil), c.prizes...)
}

// Roster returns a copy of the normalized roster.
func (c *Catalog) Roster() []string {
	return append([]string(nil), c.roster...)
}

// Len is the number of prizes.
func (c *Catalog) Len() int { return len(c.prizes) }

// RosterSize is the number of distinct participants.
func (c *Catalog) RosterSize() int { return len(c.roster) }

// Prize returns the prize at catalog index i.
func (c *Catalog) Prize(i int) (domain.Prize, error) {
	if i < 0 || i >= len(c.prizes) {
		return domain.Prize{}, fmt.Errorf("%w: %d", domain.ErrPrizeIndexOutOfRange, i)
	}
	return c.prizes[i], nil
}

// IndexOf returns the catalog index of the prize with the given id, or -1.
func (c *Catalog) IndexOf(id int) int {
	for i, p := range c.prizes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// IsLast reports whether i is the final prize.
func (c *Catalog) IsLast(i int) bool {
	return i == len(c.prizes)-1
}

// RoundChanged reports whether the prize after i starts a new round.
// It is false for the last prize.
func (c *Catalog) RoundChanged(i int) bool {
	if i < 0 || i+1 >= len(c.prizes) {
		return false
	}
	return c.prizes[i+1].Round != c.prizes[i].Round
}

// Rounds lists round numbers in catalog order without repeats.
func (c *Catalog) Rounds() []int {
	var rounds []int
	for i, p := range c.prizes {
		if i == 0 || p.Round != c.prizes[i-1].Round {
			rounds = append(rounds, p.Round)
		}
	}
	return rounds
}

// RoundOf returns the round containing prize index i together with its prizes
// ordered by group and then catalog position.
func (c *Catalog) RoundOf(i int) (domain.RoundInfo, error) {
	p, err := c.Prize(i)
	if err != nil {
		return domain.RoundInfo{}, err
	}

	info := domain.RoundInfo{Round: p.Round}
	for _, group := range domain.Groups {
		for _, other := range c.prizes {
			if other.Round == p.Round && other.Group == group {
				info.Prizes = append(info.Prizes, other)
			}
		}
	}
	return info, nil
}
