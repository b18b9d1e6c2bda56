package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/cmsadmin/internal/bootstrap"
	"github.com/osse101/cmsadmin/internal/config"
	"github.com/osse101/cmsadmin/internal/server"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -d ../.. -g cmd/app/main.go -o ../../docs --parseInternal

// @title CMS Admin API
// @version 1.0
// @description Administration backend for the CMS: sitemap, datatypes, decorations, menu rules and sessions.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pools, primary, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(primary)
	services, err := bootstrap.InitializeServices(cfg, repos)
	if err != nil {
		pools.Close()
		return err
	}

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		services.SessionManager.Run(sweepCtx, cfg.SessionSweepInterval)
	}()

	srv := server.NewServer(
		server.Options{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			MaxBodyBytes:   cfg.MaxRequestBytes,
		},
		server.Dependencies{
			DBPool:            pools,
			Pools:             pools,
			Users:             services.Users,
			Sitemap:           services.Sitemap,
			Datatypes:         services.Datatypes,
			Decorators:        services.Decorators,
			Sessions:          services.Sessions,
			SessionManager:    services.SessionManager,
			AutoLockResources: cfg.AutoLockResources,
		},
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		StopSweeper: stopSweeper,
		SweeperDone: sweeperDone,
		Pools:       pools,
	})

	return runErr
}
