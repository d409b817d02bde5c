package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"os-project/api"
	"os-project/config"
	"os-project/internal/logger"
	"os-project/internal/observability"
)

func main() {
	cfg := config.GetSchedulerConfig()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	shutdownTracing, err := observability.InitTracing("os-project", cfg.TracingExporter)
	if err != nil {
		slog.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}

	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("shutting down")
		_ = app.ShutdownWithTimeout(5 * time.Second)
	}()

	slog.Info("scheduler simulator listening", "port", cfg.Port, "time_quantum", cfg.RoundRobinTimeQuantum)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		slog.Error("server stopped", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		slog.Error("failed to flush traces", "error", err)
	}
}
