package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/osse101/cmsadmin/internal/database"
)

const devtoolTimeout = 2 * time.Minute

var devtoolPoolSettings = database.PoolSettings{
	MaxConns:        2,
	MaxConnIdle:     time.Minute,
	ApplicationName: "cmsadmin-devtool",
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// databaseURL prefers DB_URL and otherwise builds the URL from the DB_* settings
func databaseURL() string {
	if url := os.Getenv("DB_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "cmsadmin"),
	)
}

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply the embedded migrations (up) or print the schema version (version)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return usageError("migrate <up|version>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), devtoolTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, databaseURL(), devtoolPoolSettings)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "version":
		version, err := database.MigrationVersion(ctx, pool)
		if err != nil {
			return err
		}
		PrintInfo("Schema version: %d", version)
	default:
		return usageError("migrate <up|version>")
	}
	return nil
}
