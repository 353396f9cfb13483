package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FishingBot_Go/internal/server"
)

// ShutdownComponents holds everything that needs a graceful stop
type ShutdownComponents struct {
	Server       *server.Server
	Repositories *Repositories
}

// GracefulShutdown stops accepting requests, waits for in-flight ones and
// then releases the database. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Repositories != nil {
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}
