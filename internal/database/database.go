package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of a connection pool the health checks depend on
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolSettings size and age the connections of a pool. Zero values keep the pgx defaults.
type PoolSettings struct {
	MaxConns        int
	MaxConnIdle     time.Duration
	MaxConnLifetime time.Duration
	ApplicationName string
}

func (s PoolSettings) apply(config *pgxpool.Config) {
	maxConns := min(s.MaxConns, math.MaxInt32)
	if maxConns > 0 {
		config.MaxConns = int32(maxConns)
	}
	if config.MaxConns >= DefaultMinConnections {
		config.MinConns = DefaultMinConnections
	}
	if s.MaxConnIdle > 0 {
		config.MaxConnIdleTime = s.MaxConnIdle
	}
	if s.MaxConnLifetime > 0 {
		config.MaxConnLifetime = s.MaxConnLifetime
	}

	appName := s.ApplicationName
	if appName == "" {
		appName = DefaultApplicationName
	}
	config.ConnConfig.RuntimeParams["application_name"] = appName
}

// NewPool opens a PostgreSQL pool and verifies it with a ping
func NewPool(ctx context.Context, connString string, settings PoolSettings) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	settings.apply(config)

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", config.ConnConfig.Host,
		"database", config.ConnConfig.Database,
		"max_conns", config.MaxConns)
	return pool, nil
}
