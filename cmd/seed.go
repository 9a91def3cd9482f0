package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"bank-dashboard/internal/config"
	"bank-dashboard/internal/database"
	"bank-dashboard/internal/repositories"
	"bank-dashboard/internal/services"

	"github.com/spf13/cobra"
)

var (
	seedRandom  uint64
	seedOptions services.SeedOptions
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with charts and synthetic analytics data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		db, err := database.Initialize(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("failed to close database", "error", err)
			}
		}()

		chartRepo := repositories.NewChartRepository(db.DB)
		seeder := services.NewSeeder(
			chartRepo,
			repositories.NewCustomerRepository(db.DB),
			repositories.NewTransactionRepository(db.DB),
			repositories.NewLoanRepository(db.DB),
			services.NewDataGenerator(seedRandom),
			slog.Default(),
		)

		ctx := cmd.Context()
		charts, err := seeder.SeedCharts(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed charts: %w", err)
		}

		summary, err := seeder.SeedData(ctx, seedOptions)
		if err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}

		slog.Info("seed completed",
			"charts", charts,
			"customers", summary.Customers,
			"accounts", summary.Accounts,
			"transactions", summary.Transactions,
			"loans", summary.Loans,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	currentYear := time.Now().Year()
	flags := seedCmd.Flags()
	flags.Uint64Var(&seedRandom, "random-seed", 0, "generator seed, 0 picks a random one")
	flags.IntVar(&seedOptions.Customers, "customers", 500, "number of customers")
	flags.IntVar(&seedOptions.StartYear, "start-year", currentYear-3, "first year with activity")
	flags.IntVar(&seedOptions.EndYear, "end-year", currentYear-1, "last year with activity")
	flags.IntVar(&seedOptions.TransactionsPerYear, "transactions-per-year", 2000, "transactions generated per year")
	flags.IntVar(&seedOptions.LoansPerYear, "loans-per-year", 300, "loans generated per year")
}
