package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/fiberops/backend/internal/infrastructure/config"
	"github.com/fiberops/backend/internal/infrastructure/logger"
	"github.com/fiberops/backend/internal/infrastructure/migration"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

func main() {
	var (
		migrationsPath = flag.String("path", "migrations", "Path to migration files")
		logLevel       = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	log, err := logger.New(config.LogConfig{
		Level:  *logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := migration.New(db, *migrationsPath, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	command := args[0]
	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}
		log.Info("Migrations applied successfully")

	case "down":
		if err := migrator.Down(); err != nil {
			log.Fatal("Migration down failed", zap.Error(err))
		}
		log.Info("Migrations rolled back successfully")

	case "step":
		if len(args) < 2 {
			log.Fatal("step requires a number of steps, e.g. 'step 1' or 'step -1'")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid step count", zap.String("value", args[1]))
		}
		if err := migrator.Steps(n); err != nil {
			log.Fatal("Migration step failed", zap.Error(err))
		}
		log.Info("Migration steps applied", zap.Int("steps", n))

	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			log.Fatal("Failed to get migration version", zap.Error(err))
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)

	case "force":
		if len(args) < 2 {
			log.Fatal("force requires a version, e.g. 'force 1'")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid version", zap.String("value", args[1]))
		}
		if err := migrator.Force(version); err != nil {
			log.Fatal("Failed to force migration version", zap.Error(err))
		}
		log.Info("Migration version forced", zap.Int("version", version))

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Database migration tool

Usage:
  migrate [flags] <command>

Commands:
  up              Apply all pending migrations
  down            Roll back all migrations
  step <n>        Apply n migrations (negative rolls back)
  version         Show current migration version
  force <v>       Force the migration version without running migrations

Flags:
  -path string        Path to migration files (default "migrations")
  -log-level string   Log level (default "info")

Environment:
  Database connection is read from FIBEROPS_DATABASE_* variables.`)
}
