package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/cmsadmin/internal/config"
	"github.com/osse101/cmsadmin/internal/database"
)

// SetupDatabase connects the default pool, applies migrations to it and
// registers it together with every DB_EXTRA_POOLS entry in a Manager.
// On error every pool opened so far is closed.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*database.Manager, *pgxpool.Pool, error) {
	primary, err := database.NewPool(ctx, cfg.GetDBConnString(), poolSettings(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDefault, err)
	}

	if err := database.Migrate(ctx, primary); err != nil {
		primary.Close()
		return nil, nil, err
	}

	manager := database.NewManager()
	if err := manager.Register(config.DefaultPoolName, primary); err != nil {
		primary.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterPool, err)
	}

	names := make([]string, 0, len(cfg.DBExtraPools))
	for name := range cfg.DBExtraPools {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pool, err := database.NewPool(ctx, cfg.DBExtraPools[name], poolSettings(cfg))
		if err != nil {
			manager.Close()
			return nil, nil, fmt.Errorf("%s %s: %w", ErrMsgFailedConnectExtra, name, err)
		}
		if err := manager.Register(name, pool); err != nil {
			pool.Close()
			manager.Close()
			return nil, nil, fmt.Errorf("%s %s: %w", ErrMsgFailedRegisterPool, name, err)
		}
		slog.Info(LogMsgExtraPoolRegistered, "pool", name)
	}

	return manager, primary, nil
}

func poolSettings(cfg *config.Config) database.PoolSettings {
	return database.PoolSettings{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdle:     cfg.DBMaxConnIdle,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	}
}
