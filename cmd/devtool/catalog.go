package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/osse101/LuckyDraw_Go/internal/catalog"
)

type ValidateCatalogCommand struct{}

func (c *ValidateCatalogCommand) Name() string {
	return "validate-catalog"
}

func (c *ValidateCatalogCommand) Description() string {
	return "Validate a prize catalog and roster ([prizes.json] [roster.txt], defaults if omitted)"
}

func (c *ValidateCatalogCommand) Run(args []string) error {
	var prizesPath, rosterPath string
	if len(args) > 0 {
		prizesPath = args[0]
	}
	if len(args) > 1 {
		rosterPath = args[1]
	}

	PrintHeader("Validating Catalog")

	cat, err := catalog.Load(context.Background(), prizesPath, rosterPath)
	if err != nil {
		return err
	}

	printCatalog(os.Stdout, cat)
	PrintSuccess("%d prizes across %d rounds for %d participants", cat.Len(), len(cat.Rounds()), cat.RosterSize())
	return nil
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tPRIZE\tCOUNT\tROUND\tGROUP")
	for i, p := range cat.Prizes() {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%s\n", i+1, p.ID, p.Name, p.Count, p.Round, p.Group)
	}
	_ = tw.Flush()
}
