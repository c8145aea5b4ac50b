package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"cardwall/internal/adapter/http/routes"
	"cardwall/internal/shared"
)

// StartServer wires the container and router, then serves until the
// listener fails or the process is stopped.
func StartServer(ctx context.Context, cfg *shared.Config, metrics *shared.AppMetrics, logger zerolog.Logger) error {
	container, err := NewContainer(ctx, cfg, metrics, logger)

	if err != nil {
		return err
	}

	defer container.Close()

	var limiter *shared.RateLimiter

	if cfg.RateLimitEnabled {
		limiter = shared.NewRateLimiter(logger, metrics)
	}

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		CardHandler: container.CardHandler,
	}, metrics, limiter, logger)

	logger.Info().
		Int("port", cfg.Port).
		Str("environment", cfg.Environment).
		Str("db_driver", cfg.DBDriver).
		Bool("rate_limit_enabled", cfg.RateLimitEnabled).
		Msg("server starting")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
