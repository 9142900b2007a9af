package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "backing_tracks/docs"
	"backing_tracks/internal/adapter/http/routes"
	"backing_tracks/internal/infrastructure/config"
	"backing_tracks/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// @title           Backing Tracks API
// @version         1.0
// @description     Backing track orders: pricing, guest links, operator overrides and payments, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("[server] starting",
		zap.String("environment", cfg.Environment),
		zap.String("addr", cfg.Server.Address()))
	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("[server] stopped with error", zap.Error(err))
		stop()
		_ = log.Sync()
		os.Exit(1)
	}
}
