package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/repas/backend/config"
	"github.com/pageza/repas/backend/internal/api"
	"github.com/pageza/repas/backend/internal/middleware"
	"github.com/pageza/repas/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
	redis  *redis.Client
}

// New creates a new server instance. redisClient may be nil, in which case
// only the in-process rate limit applies to generation routes.
func New(cfg *config.Config, recipes service.RecipeServiceInterface, redisClient *redis.Client, version string) *Server {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)

	limits := []gin.HandlerFunc{middleware.LocalRateLimit(cfg.RateLimit, cfg.RateLimitBurst)}
	if redisClient != nil {
		limits = append(limits, middleware.NewRecipeRateLimiter(redisClient, cfg.RecipeLimitPerHour).Middleware())
	}

	api.RegisterRoutes(router, api.NewHandler(recipes), version, limits...)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		router: router,
		cfg:    cfg,
		redis:  redisClient,
		http: &http.Server{
			Addr:              cfg.Address(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and blocks until the server is
// shut down. A graceful shutdown returns nil.
func (s *Server) Start() error {
	slog.Info("server starting", "address", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server within the configured timeout
// and closes the Redis client.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
	}

	err := s.http.Shutdown(ctx)
	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil {
			slog.Warn("failed to close Redis client", "error", cerr)
		}
	}
	return err
}
