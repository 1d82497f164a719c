package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/pageza/repas/backend/config"
	"github.com/pageza/repas/backend/internal/database"
	"github.com/pageza/repas/backend/internal/service"
)

// Run wires the generator, the recipe service and the optional Redis limiter,
// serves until ctx is cancelled and then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config, version string) error {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	generator, err := service.NewGenerator(cfg)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	redisClient, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		// Continue with the in-process limiter only
		slog.Warn("shared rate limiting disabled", "error", err)
		redisClient = nil
	}

	srv := New(cfg, service.NewRecipeService(generator), redisClient, version)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
