package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/cmsadmin/internal/database"
	"github.com/osse101/cmsadmin/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	// StopSweeper cancels the session sweeper; SweeperDone is closed when it has returned.
	StopSweeper context.CancelFunc
	SweeperDone <-chan struct{}
	Pools       *database.Manager
}

// GracefulShutdown stops the HTTP server, then the session sweeper, then closes
// the connection pools. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.StopSweeper != nil {
		slog.Info(LogMsgStoppingSessionSweep)
		components.StopSweeper()
		if components.SweeperDone != nil {
			select {
			case <-components.SweeperDone:
			case <-ctx.Done():
				slog.Warn(LogMsgSweeperTimeout)
			}
		}
	}

	if components.Pools != nil {
		slog.Info(LogMsgClosingPools)
		components.Pools.Close()
	}

	slog.Info(LogMsgServerStopped)
}
