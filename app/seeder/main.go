package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jrazmi/elkseeder/app/seeder/config"
	"github.com/jrazmi/elkseeder/core/seeder"
	"github.com/jrazmi/elkseeder/sdk/logger"
	"github.com/jrazmi/elkseeder/sdk/telemetry"
)

var build = "develop"

func run(ctx context.Context, log *logger.Logger, cfg config.Config) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build, "profile", cfg.Profile)

	backend, err := cfg.Backend(log)
	if err != nil {
		return fmt.Errorf("configuring storage: %w", err)
	}

	s := seeder.New(log, backend)
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.Close(closeCtx); err != nil {
			log.ErrorContext(ctx, "shutdown", "err", err)
		}
	}()

	log.InfoContext(ctx, "init", "driver", cfg.Seeder.Driver, "target", cfg.Target())
	if err := s.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	err = s.GenerateForever(ctx)
	if errors.Is(err, context.Canceled) {
		log.InfoContext(ctx, "shutdown", "status", "generation stopped")
		return nil
	}
	return err
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}

	tel := telemetry.NewTelemetry()
	log := logger.New(cfg.Log, logger.WithTraceID(tel.GetTraceID))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = tel.SetTraceID(ctx)

	if err := run(ctx, log, cfg); err != nil {
		log.ErrorContext(ctx, "seeder", "err", err)
		stop()
		os.Exit(1)
	}
}
