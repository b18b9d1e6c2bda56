package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/cmsadmin/internal/database"
)

// SetupDBCommand creates the configured database when missing and migrates it
type SetupDBCommand struct{}

func (c *SetupDBCommand) Name() string {
	return "setup-db"
}

func (c *SetupDBCommand) Description() string {
	return "Create DB_NAME if it does not exist, then apply migrations"
}

func (c *SetupDBCommand) Run(args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), devtoolTimeout)
	defer cancel()

	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "cmsadmin")

	serverURL := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	conn, err := pgx.Connect(ctx, serverURL)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		PrintInfo("Database %s already exists", dbName)
	} else {
		PrintInfo("Creating database %s...", dbName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{dbName}.Sanitize()); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		PrintSuccess("Database created")
	}

	pool, err := database.NewPool(ctx, databaseURL(), devtoolPoolSettings)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	PrintSuccess("Migrations applied")
	return nil
}
