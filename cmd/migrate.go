package cmd

import (
	"database/sql"
	"fmt"
	"log/slog"

	"bank-dashboard/internal/config"
	"bank-dashboard/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var migrateSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, closeDB, err := openMigrationRunner(migrateSeed)
		if err != nil {
			return err
		}
		defer closeDB()

		return runner.Run()
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current migration version",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, closeDB, err := openMigrationRunner(false)
		if err != nil {
			return err
		}
		defer closeDB()

		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return err
		}
		slog.Info("migration status", "version", version, "dirty", dirty)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)
	migrateUpCmd.Flags().BoolVar(&migrateSeed, "seed", false, "load SQL seeds after migrating")
}

// openMigrationRunner connects through lib/pq. Migrations only target
// PostgreSQL; SQLite databases are migrated by the server on start.
func openMigrationRunner(seed bool) (*database.MigrationRunner, func(), error) {
	cfg := config.Load()
	if cfg.Database.Driver != config.DriverPostgres {
		return nil, nil, fmt.Errorf("migrations require DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
	return database.NewMigrationRunner(db, seed), closeDB, nil
}
