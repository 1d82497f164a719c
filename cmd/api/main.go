package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/pageza/repas/backend/config"
	"github.com/pageza/repas/backend/internal/logging"
	"github.com/pageza/repas/backend/internal/server"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logging.SetDefault("repas-api", version, cfg.LogLevel)

	// Cancelled on an interrupt or terminate signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, version); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
