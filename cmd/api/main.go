package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"adhd-task-assistant/config"
	_ "adhd-task-assistant/docs" // Swagger docs
	"adhd-task-assistant/internal/app"
	"adhd-task-assistant/internal/httpserver"
	"adhd-task-assistant/pkg/log"
)

// @title       ADHD Task Assistant API
// @description Voice/text task capture with intent recognition and ADHD-aware priority ranking.
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

	logger.Info(ctx, "Starting ADHD Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.SQLitePath)

	// 3. Domain
	assistant, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant: ", err)
		return
	}
	defer assistant.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit:   cfg.RateLimit,
		Recognizer:  assistant.Recognizer,
		TaskUseCase: assistant.Tasks,
		ReadyCheck:  assistant.Ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
