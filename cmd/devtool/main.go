package main

import (
	"os"

	"github.com/joho/godotenv"
)

func newRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(&ValidateCatalogCommand{})
	registry.Register(&ShowSessionCommand{})
	registry.Register(&HealthCheckCommand{})
	registry.Register(&WatchEventsCommand{})
	return registry
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newRegistry()

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
