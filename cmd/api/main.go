package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/OlegGirko/boss-launcher-webhook/config"
	kafkaInfra "github.com/OlegGirko/boss-launcher-webhook/config/kafka"
	postgreInfra "github.com/OlegGirko/boss-launcher-webhook/config/postgre"
	_ "github.com/OlegGirko/boss-launcher-webhook/docs" // Swagger docs
	"github.com/OlegGirko/boss-launcher-webhook/internal/httpserver"
	mappingHTTP "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/delivery/http"
	"github.com/OlegGirko/boss-launcher-webhook/internal/webhook"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/boss"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/log"
)

// @title       BOSS Launcher Webhook API
// @description Webhook ingestion and build dispatch for OBS projects.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting BOSS launcher webhook...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgreInfra.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer postgreInfra.Disconnect(ctx, db)

	// 4. Kafka launch queue
	producer, err := kafkaInfra.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect kafka producer: %v", err)
	}
	defer kafkaInfra.DisconnectProducer()

	launcher := boss.New(producer, cfg.Kafka.Topic, logger)

	// 5. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Launcher:    launcher,
		WebhookSecurity: webhook.SecurityConfig{
			IPFilterEnabled:   cfg.Webhook.IPFilterEnabled,
			TrustForwardedFor: cfg.Webhook.TrustForwardedFor,
			AllowedNetworks:   cfg.Webhook.AllowedNetworks,
			RateLimitPerMin:   cfg.Webhook.RateLimitPerMin,
		},
		Landing: mappingHTTP.LandingConfig{
			Public:   cfg.Webhook.PublicLandingPage,
			LoginURL: cfg.Auth.LoginURL,
		},
		Auth: cfg.Auth,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create http server: %v", err)
	}

	logger.Infof(ctx, "Listening on :%d", cfg.HTTPServer.Port)
	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}
