package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"user-management-service/internal/application/interfaces"
	"user-management-service/internal/application/services"
	"user-management-service/internal/config"
	"user-management-service/internal/delivery/server"
	"user-management-service/internal/infrastructure/db/gormdb"
	"user-management-service/internal/infrastructure/telemetry"
	"user-management-service/internal/messaging"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint, cfg.OTelServiceName)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("Failed to flush traces: %v", err)
		}
	}()

	db, err := gormdb.Open(cfg.DBDriver, cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}
	defer func() {
		if err := gormdb.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()
	log.Printf("Connected to %s database", cfg.DBDriver)

	var publisher interfaces.EventPublisher
	if cfg.NATSURL != "" {
		natsPublisher, err := messaging.ConnectNats(cfg.NATSURL, cfg.OTelServiceName)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	userService := services.NewUserService(
		gormdb.NewUserRepository(db),
		gormdb.NewIdempotencyRepository(db),
		publisher,
	)

	e := server.New(server.Options{
		RateLimitRPS:          cfg.RateLimitRPS,
		RateLimitBurst:        cfg.RateLimitBurst,
		MaxConcurrentRequests: cfg.MaxConcurrentRequests,
		RequestTimeout:        cfg.RequestTimeout,
	}, userService)

	if err := server.Run(ctx, e, cfg.HTTPAddr, cfg.ShutdownTimeout); err != nil {
		log.Printf("Server stopped: %v", err)
	}
	return nil
}
