package repositories

import (
	"context"

	"bank-dashboard/internal/models"
)

// ChartRepositoryInterface defines the contract for chart catalogue reads
type ChartRepositoryInterface interface {
	Create(ctx context.Context, chart *models.Chart) error
	ListAll(ctx context.Context) ([]models.Chart, error)
	ListByRole(ctx context.Context, role string) ([]models.Chart, error)
}

// TransactionRepositoryInterface defines the contract for transaction analytics
type TransactionRepositoryInterface interface {
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	MonthlyChannelTotals(ctx context.Context, year int) ([]models.MonthlyChannelTotal, error)
}

// LoanRepositoryInterface defines the contract for loan analytics
type LoanRepositoryInterface interface {
	CreateBatch(ctx context.Context, loans []models.Loan) error
	TypeTotals(ctx context.Context, year int) ([]models.LoanTypeTotal, error)
}

// CustomerRepositoryInterface defines the contract for customer and
// account analytics. A nil country means all countries.
type CustomerRepositoryInterface interface {
	CreateBatch(ctx context.Context, customers []models.Customer) error
	CreateAccounts(ctx context.Context, accounts []models.Account) error
	CohortCounts(ctx context.Context, country *string) ([]models.CohortZoneCount, error)
	Countries(ctx context.Context) ([]string, error)
	IncomeLevelCounts(ctx context.Context, country *string) ([]models.LabelCount, error)
	SegmentCounts(ctx context.Context, country *string) ([]models.LabelCount, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, role string) ([]*models.User, error)
	UpdateFields(ctx context.Context, email string, fields map[string]interface{}) error
	Delete(ctx context.Context, email string) error
}

// AuditLogRepositoryInterface defines the contract for audit log operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	ListBySubject(ctx context.Context, subject string, limit int) ([]*models.AuditLog, error)
}
