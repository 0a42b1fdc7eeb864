// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

// Command meibo is the entry point for the Meibo personnel roster CLI.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Construct the resource registry, path resolver, store, and repository.
//  4. Execute the requested subcommand.
//  5. Force-close any leaked streams through the registry on the way out.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/meibo-app/meibo/internal/platform/config"
	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/internal/platform/resource"
	"github.com/meibo-app/meibo/internal/roster"
	"github.com/meibo-app/meibo/internal/store"
	"github.com/meibo-app/meibo/internal/validation"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	bootLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(bootLog)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(bootLog, err, "load configuration")

	// Re-initialize with the environment-appropriate handler and level.
	log := newLogger(cfg, os.Stderr)
	slog.SetDefault(log)
	if cfg.Debug {
		log.Debug("debug_logging_enabled")
	}

	// ── 3. Core Wiring ────────────────────────────────────────────────────
	registry := resource.NewRegistry(log)
	defer func() {
		if leaked := registry.CloseAll(); leaked > 0 {
			log.Warn("leaked_streams_closed", slog.Int("count", leaked))
		}
	}()

	resolver := store.NewPathResolver(cfg, log)
	service := validation.NewService(log)
	fileStore := store.New(cfg, resolver, registry, service, log)

	prompt := newConfirmPrompt(os.Stdin, os.Stderr)
	repository := roster.NewRepository(fileStore, prompt, cfg, log)

	// ── 4. Command Execution ──────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCommand(&app{
		cfg:        cfg,
		service:    service,
		repository: repository,
		logger:     log,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "meibo: %v\n", err)
		stop()
		registry.CloseAll()
		os.Exit(1)
	}
}

// newLogger builds the application logger: human-readable text output in
// development, JSON elsewhere; debug level when the debug flag is set.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must aborts startup when a wiring step fails.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failed", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}
