package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"drone-vision-go/internal/api"
	"drone-vision-go/internal/config"
	"drone-vision-go/internal/detector"
	"drone-vision-go/internal/logging"
	"drone-vision-go/internal/messaging"
	"drone-vision-go/internal/metrics"
	"drone-vision-go/internal/pipeline"
)

// @title Drone Vision API
// @version 2.0.0
// @description Wildlife detection worker: frame preprocessing, model inference, thermal visualization and rolling telemetry
// @BasePath /
func main() {
	// Setup structured logging
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Optional Logdy web UI tee
	if cfg.LogdyEnabled {
		w, url, err := logging.StartLogdy(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to start Logdy, continuing without it")
		} else {
			console := zerolog.ConsoleWriter{Out: os.Stderr}
			log.Logger = log.Output(zerolog.MultiLevelWriter(console, w))
			log.Info().Str("url", url).Msg("Log streaming enabled")
		}
	}

	log.Info().
		Str("worker_id", cfg.WorkerID).
		Str("version", cfg.Version).
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Str("model", cfg.ModelName).
		Msg("Starting drone vision worker")

	// Optional NATS event publishing
	var events *messaging.Service
	if cfg.NatsEnabled {
		events, err = messaging.NewService(cfg)
		if err != nil {
			log.Warn().Err(err).Str("url", cfg.NatsURL).Msg("NATS unavailable, detection events disabled")
			events = nil
		} else {
			log.Info().Str("url", cfg.NatsURL).Msg("Connected to NATS")
		}
	}

	det := detector.NewClient(cfg.ModelURL, cfg.ModelName, cfg.ModelTimeout)

	tracker := metrics.NewTracker()
	exporter := metrics.NewExporter(tracker)
	store := config.NewStore(cfg)

	svc := pipeline.NewService(store, det, tracker, events,
		cfg.WorkerID, logging.NewServiceLogger(cfg, "pipeline"))

	server := api.NewServer(cfg, store, svc, tracker, exporter)
	if err := server.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up server")
	}

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	} else {
		log.Info().Msg("Server shutdown complete")
	}

	if events != nil {
		if err := events.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("NATS shutdown failed")
		}
	}
}
