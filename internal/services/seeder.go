package services

import (
	"context"
	"fmt"
	"log/slog"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories"

	"gorm.io/datatypes"
)

// SeedOptions sizes a synthetic data set. Years are inclusive.
type SeedOptions struct {
	Customers           int
	StartYear           int
	EndYear             int
	TransactionsPerYear int
	LoansPerYear        int
}

type SeedSummary struct {
	Customers    int `json:"customers"`
	Accounts     int `json:"accounts"`
	Transactions int `json:"transactions"`
	Loans        int `json:"loans"`
}

type seeder struct {
	chartRepo       repositories.ChartRepositoryInterface
	customerRepo    repositories.CustomerRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	loanRepo        repositories.LoanRepositoryInterface
	generator       DataGeneratorInterface
	logger          *slog.Logger
}

func NewSeeder(
	chartRepo repositories.ChartRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	loanRepo repositories.LoanRepositoryInterface,
	generator DataGeneratorInterface,
	logger *slog.Logger,
) SeederInterface {
	return &seeder{
		chartRepo:       chartRepo,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		loanRepo:        loanRepo,
		generator:       generator,
		logger:          logger,
	}
}

// DefaultCharts is the dashboard chart catalogue shipped with the service.
func DefaultCharts() []models.Chart {
	return []models.Chart{
		{ID: 1, Description: "Monthly transaction volume by channel", AllowedRoles: datatypes.JSONSlice[string]{models.RoleAdmin, models.RoleBusinessLeader}},
		{ID: 2, Description: "Loan distribution by type", AllowedRoles: datatypes.JSONSlice[string]{models.RoleAdmin, models.RoleBusinessLeader}},
		{ID: 3, Description: "New customers by zone and year", AllowedRoles: datatypes.JSONSlice[string]{models.RoleAdmin, models.RoleBusinessLeader, models.RoleMarketingAnalyst}},
		{ID: 4, Description: "Customer income and segment mix", AllowedRoles: datatypes.JSONSlice[string]{models.RoleAdmin, models.RoleMarketingAnalyst}},
		{ID: 5, Description: "Churn rate by income and segment", AllowedRoles: datatypes.JSONSlice[string]{models.RoleAdmin, models.RoleMarketingAnalyst}},
		{ID: 6, Description: "Return on investment by country", AllowedRoles: datatypes.JSONSlice[string]{models.RoleAdmin, models.RoleBusinessLeader}},
	}
}

// SeedCharts installs the default catalogue when the charts table is
// empty and reports how many charts it created.
func (s *seeder) SeedCharts(ctx context.Context) (int, error) {
	existing, err := s.chartRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check chart catalogue: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	charts := DefaultCharts()
	for i := range charts {
		if err := s.chartRepo.Create(ctx, &charts[i]); err != nil {
			return i, fmt.Errorf("failed to seed chart %d: %w", charts[i].ID, err)
		}
	}

	s.logger.Info("seeded chart catalogue", "charts", len(charts))
	return len(charts), nil
}

// SeedData generates customers with accounts, then transactions and loans
// for every year in the range.
func (s *seeder) SeedData(ctx context.Context, opts SeedOptions) (*SeedSummary, error) {
	if opts.Customers <= 0 || opts.StartYear <= 0 || opts.EndYear < opts.StartYear {
		return nil, fmt.Errorf("%w: customers and a valid year range", ErrMissingParameter)
	}

	summary := &SeedSummary{}

	customers := s.generator.GenerateCustomers(opts.Customers)
	if err := s.customerRepo.CreateBatch(ctx, customers); err != nil {
		return nil, err
	}
	summary.Customers = len(customers)

	accounts := s.generator.GenerateAccounts(customers, opts.StartYear, opts.EndYear)
	if err := s.customerRepo.CreateAccounts(ctx, accounts); err != nil {
		return nil, err
	}
	summary.Accounts = len(accounts)

	for year := opts.StartYear; year <= opts.EndYear; year++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		transactions := s.generator.GenerateTransactions(year, opts.TransactionsPerYear)
		if err := s.transactionRepo.CreateBatch(ctx, transactions); err != nil {
			return summary, err
		}
		summary.Transactions += len(transactions)

		loans := s.generator.GenerateLoans(year, opts.LoansPerYear)
		if err := s.loanRepo.CreateBatch(ctx, loans); err != nil {
			return summary, err
		}
		summary.Loans += len(loans)

		s.logger.Info("seeded year", "year", year, "transactions", len(transactions), "loans", len(loans))
	}

	return summary, nil
}
