package services

import (
	"context"
	"time"

	"bank-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// ChartResolverInterface decides which dashboard charts a role may see
type ChartResolverInterface interface {
	Resolve(ctx context.Context, role string) ([]models.ChartDescriptor, error)
}

// TransactionAnalyticsInterface builds the month by channel time series
type TransactionAnalyticsInterface interface {
	Aggregate(ctx context.Context, year int) (*models.TransactionSeries, error)
}

// LoanAnalyticsInterface builds the per-loan-type distribution
type LoanAnalyticsInterface interface {
	Aggregate(ctx context.Context, year int) (*models.LoanDistribution, error)
}

// CohortAnalyticsInterface builds the year by zone customer cohorts.
// A nil country means all countries.
type CohortAnalyticsInterface interface {
	Aggregate(ctx context.Context, country *string) (models.CustomerCohorts, error)
}

// CustomerInsightsInterface serves the country filter and segment breakdown
type CustomerInsightsInterface interface {
	Countries(ctx context.Context) ([]string, error)
	Segments(ctx context.Context, country *string) (*models.SegmentBreakdown, error)
}

// UserDirectoryInterface manages dashboard users and their roles
type UserDirectoryInterface interface {
	Register(ctx context.Context, email, password, fullName, ipAddress string) (*models.User, error)
	Authenticate(ctx context.Context, email, password, ipAddress string) (*models.User, error)
	Get(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, role string) ([]*models.User, error)
	UpdateRole(ctx context.Context, email, role, ipAddress string) (*models.User, error)
	UpdateName(ctx context.Context, email, fullName, ipAddress string) (*models.User, error)
	Delete(ctx context.Context, email, ipAddress string) error
	Activity(ctx context.Context, email string, limit int) ([]*models.AuditLog, error)
	EnsureAdmin(ctx context.Context, email, password, fullName string) error
}

// AuditServiceInterface records user directory changes
type AuditServiceInterface interface {
	Record(ctx context.Context, subject, action, ipAddress string, metadata map[string]interface{}) error
	History(ctx context.Context, subject string, limit int) ([]*models.AuditLog, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// AnalyticsLoggerInterface provides structured logging for aggregations and
// user directory events
type AnalyticsLoggerInterface interface {
	LogAggregationStarted(ctx context.Context, aggregator string, filter string)
	LogAggregationCompleted(ctx context.Context, aggregator string, rows int, durationMs int64)
	LogAggregationFailed(ctx context.Context, aggregator string, errorMsg string, durationMs int64)
	LogSkippedRow(ctx context.Context, aggregator, reason, value string)
	LogUserEvent(ctx context.Context, event, email string)
}

// DataGeneratorInterface generates realistic dashboard data for seeding
type DataGeneratorInterface interface {
	GenerateCustomers(count int) []models.Customer
	GenerateAccounts(customers []models.Customer, startYear, endYear int) []models.Account
	GenerateTransactions(year, count int) []models.Transaction
	GenerateLoans(year, count int) []models.Loan
	GenerateAmount(channel models.Channel) decimal.Decimal
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}

// SeederInterface fills an empty database with the chart catalogue and
// synthetic analytics data
type SeederInterface interface {
	SeedCharts(ctx context.Context) (int, error)
	SeedData(ctx context.Context, opts SeedOptions) (*SeedSummary, error)
}
