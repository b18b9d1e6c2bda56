package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	registry := NewRegistry()
	registry.Register(
		&MigrateCommand{},
		&WaitForDBCommand{},
		&SetupDBCommand{},
		&HealthCheckCommand{},
		&DecorateCommand{},
		&FormValuesCommand{},
		&CheckUserCommand{},
	)

	os.Exit(registry.Dispatch(os.Args[1:]))
}
