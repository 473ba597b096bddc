package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"jobmatch/internal/app"
	"jobmatch/internal/config"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap app: %v", err)
	}
	logger := bootstrap.Container.Logger
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error("cleanup failed", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatal("invalid HTTP port", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()
	logger.Info("server started", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}
}
