// Command reset discards the saved drawing session for the configured event,
// so the next start cannot resume it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/osse101/LuckyDraw_Go/internal/bootstrap"
	"github.com/osse101/LuckyDraw_Go/internal/config"
)

func main() {
	force := flag.Bool("force", false, "skip the confirmation prompt")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open session storage: %v", err)
	}
	defer storage.Close()

	saved, err := storage.Store.Load(ctx)
	if err != nil {
		log.Printf("Failed to read saved session: %v\n", err)
		return
	}
	if saved == nil {
		log.Printf("No saved session under %s, nothing to do.\n", cfg.StorageKey())
		return
	}

	log.Printf("Saved session under %s: stage %s, prize %d, %d winners drawn.\n",
		cfg.StorageKey(), saved.Stage, saved.CurrentPrizeIndex+1, len(saved.Winners))

	if !*force && !confirm() {
		log.Println("Aborted.")
		return
	}

	if err := storage.Store.Clear(ctx); err != nil {
		log.Printf("Failed to clear saved session: %v\n", err)
		return
	}

	log.Println("\n✅ Saved session cleared!")
}

func confirm() bool {
	fmt.Print("Type 'yes' to discard it: ")
	var answer string
	if _, err := fmt.Fscanln(os.Stdin, &answer); err != nil {
		return false
	}
	return strings.TrimSpace(answer) == "yes"
}
