package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bank-dashboard/internal/database"
	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories"

	"github.com/stretchr/testify/suite"
)

// SeederTestSuite runs the seeder against SQLite and reads the result back
// through the aggregators.
type SeederTestSuite struct {
	suite.Suite
	db              *database.DB
	chartRepo       repositories.ChartRepositoryInterface
	customerRepo    repositories.CustomerRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	loanRepo        repositories.LoanRepositoryInterface
	seeder          SeederInterface
	logger          AnalyticsLoggerInterface
	ctx             context.Context
}

func (s *SeederTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.chartRepo = repositories.NewChartRepository(s.db.DB)
	s.customerRepo = repositories.NewCustomerRepository(s.db.DB)
	s.transactionRepo = repositories.NewTransactionRepository(s.db.DB)
	s.loanRepo = repositories.NewLoanRepository(s.db.DB)

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.logger = NewAnalyticsLogger(discard)
	s.seeder = NewSeeder(s.chartRepo, s.customerRepo, s.transactionRepo, s.loanRepo, NewDataGenerator(2024), discard)
	s.ctx = context.Background()
}

func (s *SeederTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestSeederSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

func (s *SeederTestSuite) TestSeedCharts_OnlyWhenEmpty() {
	created, err := s.seeder.SeedCharts(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(DefaultCharts()), created)

	created, err = s.seeder.SeedCharts(s.ctx)
	s.Require().NoError(err)
	s.Zero(created)

	charts, err := s.chartRepo.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(charts, len(DefaultCharts()))
}

func (s *SeederTestSuite) TestSeedCharts_VisibleToEveryRole() {
	_, err := s.seeder.SeedCharts(s.ctx)
	s.Require().NoError(err)

	resolver := NewChartResolver(s.chartRepo, s.logger, NewNoopMetrics())
	for _, role := range []string{models.RoleAdmin, models.RoleBusinessLeader, models.RoleMarketingAnalyst} {
		charts, err := resolver.Resolve(s.ctx, role)
		s.Require().NoError(err)
		s.NotEmpty(charts, role)
	}

	charts, err := resolver.Resolve(s.ctx, models.RolePending)
	s.Require().NoError(err)
	s.Empty(charts)
}

func (s *SeederTestSuite) TestSeedData_InvalidOptions() {
	_, err := s.seeder.SeedData(s.ctx, SeedOptions{Customers: 0, StartYear: 2023, EndYear: 2024})
	s.ErrorIs(err, ErrMissingParameter)

	_, err = s.seeder.SeedData(s.ctx, SeedOptions{Customers: 5, StartYear: 2024, EndYear: 2023})
	s.ErrorIs(err, ErrMissingParameter)
}

func (s *SeederTestSuite) TestSeedData_FeedsAggregators() {
	summary, err := s.seeder.SeedData(s.ctx, SeedOptions{
		Customers:           20,
		StartYear:           2022,
		EndYear:             2023,
		TransactionsPerYear: 120,
		LoansPerYear:        30,
	})
	s.Require().NoError(err)
	s.Equal(20, summary.Customers)
	s.GreaterOrEqual(summary.Accounts, 20)
	s.Equal(240, summary.Transactions)
	s.Equal(60, summary.Loans)

	metrics := NewNoopMetrics()

	series, err := NewTransactionAnalyticsService(s.transactionRepo, s.logger, metrics).Aggregate(s.ctx, 2023)
	s.Require().NoError(err)
	s.Len(series.Months, models.MonthsPerYear)
	var sum float64
	for _, channel := range models.Channels() {
		values := series.ForChannel(channel)
		s.Len(values, models.MonthsPerYear)
		for _, v := range values {
			sum += v
		}
	}
	s.Positive(sum)

	dist, err := NewLoanAnalyticsService(s.loanRepo, s.logger, metrics).Aggregate(s.ctx, 2022)
	s.Require().NoError(err)
	s.IsIncreasing(dist.LoanTypes)
	var loans int64
	for _, count := range dist.LoanCounts {
		loans += count
	}
	s.EqualValues(30, loans)

	cohorts, err := NewCohortAnalyticsService(s.customerRepo, s.logger, metrics).Aggregate(s.ctx, nil)
	s.Require().NoError(err)
	s.NotEmpty(cohorts)
	for year := range cohorts {
		s.GreaterOrEqual(year, 2022)
		s.LessOrEqual(year, 2023)
	}

	_, err = NewTransactionAnalyticsService(s.transactionRepo, s.logger, metrics).Aggregate(s.ctx, 2021)
	s.ErrorIs(err, ErrNoData)
}

func (s *SeederTestSuite) TestSeedData_CanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.seeder.SeedData(ctx, SeedOptions{Customers: 3, StartYear: 2023, EndYear: 2023, TransactionsPerYear: 1, LoansPerYear: 1})
	s.Error(err)
}
