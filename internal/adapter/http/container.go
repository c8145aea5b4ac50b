package http

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"cardwall/internal/adapter/database/memory"
	"cardwall/internal/adapter/database/postgres"
	"cardwall/internal/adapter/database/sqlite"
	"cardwall/internal/adapter/http/handler"
	"cardwall/internal/adapter/token"
	"cardwall/internal/core/port"
	"cardwall/internal/core/service"
	"cardwall/internal/shared"
)

// Container wires the store, services and handlers for one process.
type Container struct {
	Store       port.UserStore
	AuthService port.AuthService
	CardService port.CardService

	AuthHandler *handler.AuthHandler
	CardHandler *handler.CardHandler

	cleanup func()
}

func NewContainer(ctx context.Context, cfg *shared.Config, metrics *shared.AppMetrics, logger zerolog.Logger) (*Container, error) {
	store, cleanup, err := newStore(ctx, cfg, logger)

	if err != nil {
		return nil, err
	}

	tokens := token.NewJWT(cfg.JWTSecret)

	authSvc := service.NewAuthService(store, tokens, logger)
	cardSvc := service.NewCardService(store, logger)

	return &Container{
		Store:       store,
		AuthService: authSvc,
		CardService: cardSvc,
		AuthHandler: handler.NewAuthHandler(authSvc, metrics, logger),
		CardHandler: handler.NewCardHandler(authSvc, cardSvc, metrics, logger),
		cleanup:     cleanup,
	}, nil
}

func (c *Container) Close() {
	if c.cleanup != nil {
		c.cleanup()
	}
}

func newStore(ctx context.Context, cfg *shared.Config, logger zerolog.Logger) (port.UserStore, func(), error) {
	switch cfg.DBDriver {
	case "sqlite":
		db, err := sqlite.Open(cfg.DatabasePath, cfg.MigrationsPath, logger)

		if err != nil {
			return nil, nil, err
		}

		return sqlite.NewUserStore(db), func() { db.Close() }, nil

	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)

		if err != nil {
			return nil, nil, err
		}

		store := postgres.NewUserStore(pool)

		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}

		return store, pool.Close, nil

	case "memory":
		return memory.NewStore(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
}
