package repositories

import (
	"context"
	"fmt"

	"bank-dashboard/internal/models"

	"gorm.io/gorm"
)

const batchSize = 500

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(transactions, batchSize).Error; err != nil {
		return fmt.Errorf("failed to create transactions batch: %w", err)
	}

	return nil
}

// MonthlyChannelTotals sums transaction amounts per (month, channel) for
// the given calendar year. Channels are returned as stored.
func (r *transactionRepository) MonthlyChannelTotals(ctx context.Context, year int) ([]models.MonthlyChannelTotal, error) {
	var totals []models.MonthlyChannelTotal

	start, end := yearBounds(year)
	query := fmt.Sprintf(`
		SELECT
			%s AS txn_month,
			channel,
			SUM(amount) AS total_amount
		FROM transactions
		WHERE transaction_date >= ? AND transaction_date < ?
		GROUP BY txn_month, channel
		ORDER BY txn_month, channel
	`, monthExpr(r.db, "transaction_date"))

	if err := r.db.WithContext(ctx).Raw(query, start, end).Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly channel totals: %w", err)
	}

	return totals, nil
}
