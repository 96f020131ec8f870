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
	"github.com/jrazmi/elkseeder/app/tooling/commands"
	"github.com/jrazmi/elkseeder/core/seeder"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

var build = "develop"

func processCommands(ctx context.Context, log *logger.Logger, command string, args []string, s *seeder.Seeder) error {
	switch command {
	case "bootstrap":
		return commands.Bootstrap(ctx, log, s)

	case "count":
		err := commands.Count(ctx, os.Stdout, args, s)
		if errors.Is(err, commands.ErrHelp) {
			return nil
		}
		return err

	default:
		printHelp()
		return fmt.Errorf("%w %q", commands.ErrUnknownCommand, command)
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  bootstrap - create the database and users table")
	fmt.Println("  count     - print the number of users and the most recent ones")
	fmt.Println()
	fmt.Println("Use 'go run ./app/tooling <command> --help' for command-specific help.")
}

func run(ctx context.Context, log *logger.Logger, cfg config.Config) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build, "profile", cfg.Profile)

	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	if command == "" || command == "help" || command == "--help" || command == "-h" {
		printHelp()
		return nil
	}

	backend, err := cfg.Backend(log)
	if err != nil {
		return fmt.Errorf("configuring storage: %w", err)
	}
	s := seeder.New(log, backend)
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		s.Close(context.WithoutCancel(ctx))
	}()
	log.InfoContext(ctx, "init", "driver", cfg.Seeder.Driver, "target", cfg.Target())

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- processCommands(ctx, log, command, os.Args[2:], s)
	}()

	select {
	case err := <-done:
		return err

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		cancel()

		// Give a short time for commands to complete
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			return errors.New("shutdown timeout")
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "oh no we couldn't even get config going:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)
	ctx := context.Background()

	if err = run(ctx, log, cfg); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}
