package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"voice-ordering/config"
	"voice-ordering/internal/app"
	"voice-ordering/internal/httpserver"
	"voice-ordering/internal/middleware"
	"voice-ordering/internal/model"
	"voice-ordering/pkg/log"
)

// @title       Voice Ordering API
// @description Conversational dinner ordering backed by an LLM and the menu catalog.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Environment
	if os.Getenv("ENVIRONMENT_NAME") != string(model.EnvironmentProduction) {
		_ = godotenv.Load()
	}

	// 2. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 3. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Ordering API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 4. Catalog, LLM and conversation engine
	application, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer application.Close()

	// 5. HTTP Server
	shutdownTimeout, err := time.ParseDuration(cfg.HTTPServer.ShutdownTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid shutdown timeout %q, using default: %v", cfg.HTTPServer.ShutdownTimeout, err)
		shutdownTimeout = 0
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: shutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.New(logger, middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		}),
		MenuUseCase:       application.Menu,
		VoiceOrderUseCase: application.VoiceOrder,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
