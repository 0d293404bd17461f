// Seeds a local database with sample shift workers.
// Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"os"

	"github.com/blaisecz/shift-coach/internal/config"
	"github.com/blaisecz/shift-coach/internal/logger"
	"github.com/blaisecz/shift-coach/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, "console", "seed")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := seed.Run(db, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, u := range seed.Users() {
		fmt.Printf("  %s (%s)\n", u.ID, u.Timezone)
	}
}
