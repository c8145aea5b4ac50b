package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "cardwall/internal/adapter/http"
	"cardwall/internal/shared"
	"cardwall/pkg/tracing"
)

func main() {
	ctx := context.Background()

	cfg, err := shared.NewConfig()

	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger := shared.NewLogger(cfg)

	telemetry, err := tracing.Init(ctx, tracing.Config{
		ServiceName:    "cardwall",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	defer telemetry.Shutdown(ctx)

	metrics := shared.NewAppMetrics()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := api.StartServer(ctx, cfg, metrics, logger); err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-c
	logger.Info().Msg("shutting down gracefully")
}
