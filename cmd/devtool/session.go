package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/osse101/LuckyDraw_Go/internal/bootstrap"
	"github.com/osse101/LuckyDraw_Go/internal/catalog"
	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/session"
)

type ShowSessionCommand struct{}

func (c *ShowSessionCommand) Name() string {
	return "show-session"
}

func (c *ShowSessionCommand) Description() string {
	return "Print the saved session and check it against the catalog"
}

func (c *ShowSessionCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	cat, err := catalog.Load(ctx, cfg.CatalogPath, cfg.RosterPath)
	if err != nil {
		return err
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	PrintHeader(fmt.Sprintf("Saved Session (%s, %s)", cfg.StoreDriver, cfg.StorageKey()))

	saved, err := storage.Store.Load(ctx)
	if err != nil {
		return err
	}
	if saved == nil {
		PrintInfo("Nothing saved")
		return nil
	}

	printSession(os.Stdout, *saved, cat)

	if err := session.Check(*saved, cat); err != nil {
		PrintWarning("Saved session would be discarded on resume: %v", err)
		return nil
	}
	PrintSuccess("Saved session is resumable")
	return nil
}

func printSession(w io.Writer, s domain.SessionState, cat *catalog.Catalog) {
	fmt.Fprintf(w, "Stage:      %s\n", s.Stage)
	if p, err := cat.Prize(s.CurrentPrizeIndex); err == nil {
		fmt.Fprintf(w, "Prize:      %d/%d %s\n", s.CurrentPrizeIndex+1, cat.Len(), p.Name)
	} else {
		fmt.Fprintf(w, "Prize:      index %d (out of range)\n", s.CurrentPrizeIndex)
	}
	fmt.Fprintf(w, "Remaining:  %d\n", len(s.RemainingMembers))
	fmt.Fprintf(w, "Winners:    %d\n", len(s.Winners))

	for _, p := range cat.Prizes() {
		var names []string
		for _, winner := range s.Winners {
			if winner.PrizeID == p.ID {
				names = append(names, winner.Name)
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(w, "  %s (%d): %v\n", p.Name, len(names), names)
		}
	}
}
