package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ColorRush_Go/internal/bootstrap"
	"github.com/osse101/ColorRush_Go/internal/config"
	"github.com/osse101/ColorRush_Go/internal/server"
	"github.com/osse101/ColorRush_Go/internal/session"
	"github.com/osse101/ColorRush_Go/internal/sse"
)

const shutdownTimeout = 10 * time.Second

//go:generate go run github.com/swaggo/swag/cmd/swag init -d ../../ -g cmd/app/main.go -o ../../docs --parseInternal

// @title Color Rush API
// @version 1.0
// @description Round engine for the Color Rush prediction game: sessions, commands, snapshots and live event streams.
// @BasePath /
func main() {
	if err := run(); err != nil {
		slog.Error("Color Rush failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	gameRules, err := bootstrap.LoadRules(cfg)
	if err != nil {
		return err
	}

	bus := bootstrap.InitializeEventSystem()

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		SSEHub:   hub,
		Rules:    gameRules,
	}); err != nil {
		return err
	}

	sessions := session.NewManager(session.Config{
		Capacity: cfg.SessionCapacity,
		TTL:      cfg.SessionTTL,
	}, gameRules, bus)

	pool, sched := bootstrap.StartBackgroundJobs(sessions, cfg.SessionReportInterval)

	srv := server.NewServer(cfg, server.Dependencies{
		Sessions: sessions,
		Health:   sessions,
		Hub:      hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case runErr = <-serverErr:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Sessions:  sessions,
		SSEHub:    hub,
	})

	return runErr
}
