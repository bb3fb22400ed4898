package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ColorRush_Go/internal/scheduler"
	"github.com/osse101/ColorRush_Go/internal/server"
	"github.com/osse101/ColorRush_Go/internal/session"
	"github.com/osse101/ColorRush_Go/internal/sse"
	"github.com/osse101/ColorRush_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Sessions  *session.Manager
	SSEHub    *sse.Hub
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests, end open streams)
// 2. Background jobs
// 3. Game sessions
// 4. SSE hub, if the server did not already stop it
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	if components.Sessions != nil {
		slog.Info(LogMsgShuttingDownSessions, "count", components.Sessions.Count())
		if err := components.Sessions.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSessionsForcedClose, "error", err)
		}
	}

	if components.SSEHub != nil {
		components.SSEHub.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
