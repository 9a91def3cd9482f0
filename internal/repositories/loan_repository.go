package repositories

import (
	"context"
	"fmt"

	"bank-dashboard/internal/models"

	"gorm.io/gorm"
)

type loanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) LoanRepositoryInterface {
	return &loanRepository{db: db}
}

func (r *loanRepository) CreateBatch(ctx context.Context, loans []models.Loan) error {
	if len(loans) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(loans, batchSize).Error; err != nil {
		return fmt.Errorf("failed to create loans batch: %w", err)
	}

	return nil
}

// TypeTotals counts and sums loans per type for loans starting in year,
// ordered by loan type ascending.
func (r *loanRepository) TypeTotals(ctx context.Context, year int) ([]models.LoanTypeTotal, error) {
	var totals []models.LoanTypeTotal

	start, end := yearBounds(year)
	query := `
		SELECT
			loan_type,
			COUNT(*) AS loan_count,
			SUM(amount) AS total_amount
		FROM loans
		WHERE start_date >= ? AND start_date < ?
		GROUP BY loan_type
		ORDER BY loan_type ASC
	`

	if err := r.db.WithContext(ctx).Raw(query, start, end).Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get loan type totals: %w", err)
	}

	return totals, nil
}
