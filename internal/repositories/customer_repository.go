package repositories

import (
	"context"
	"fmt"

	"bank-dashboard/internal/models"

	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{db: db}
}

func (r *customerRepository) CreateBatch(ctx context.Context, customers []models.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(customers, batchSize).Error; err != nil {
		return fmt.Errorf("failed to create customers batch: %w", err)
	}

	return nil
}

func (r *customerRepository) CreateAccounts(ctx context.Context, accounts []models.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(accounts, batchSize).Error; err != nil {
		return fmt.Errorf("failed to create accounts batch: %w", err)
	}

	return nil
}

// CohortCounts counts distinct customers per (account open year, zone).
// A customer with accounts opened in two years counts in both.
func (r *customerRepository) CohortCounts(ctx context.Context, country *string) ([]models.CohortZoneCount, error) {
	var counts []models.CohortZoneCount

	query := r.db.WithContext(ctx).
		Table("accounts").
		Select(fmt.Sprintf("%s AS open_year, customers.zone AS zone, COUNT(DISTINCT customers.id) AS customer_count",
			yearExpr(r.db, "accounts.open_date"))).
		Joins("JOIN customers ON customers.id = accounts.customer_id")

	if country != nil {
		query = query.Where("customers.country = ?", *country)
	}

	if err := query.Group("open_year, customers.zone").
		Order("open_year, customers.zone").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to get cohort counts: %w", err)
	}

	return counts, nil
}

// Countries returns the distinct customer countries in ascending order.
func (r *customerRepository) Countries(ctx context.Context) ([]string, error) {
	var countries []string
	if err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Distinct().
		Order("country ASC").
		Pluck("country", &countries).Error; err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	return countries, nil
}

func (r *customerRepository) IncomeLevelCounts(ctx context.Context, country *string) ([]models.LabelCount, error) {
	counts, err := r.countBy(ctx, "income_level", country)
	if err != nil {
		return nil, fmt.Errorf("failed to get income level counts: %w", err)
	}
	return counts, nil
}

func (r *customerRepository) SegmentCounts(ctx context.Context, country *string) ([]models.LabelCount, error) {
	counts, err := r.countBy(ctx, "segment", country)
	if err != nil {
		return nil, fmt.Errorf("failed to get segment counts: %w", err)
	}
	return counts, nil
}

// countBy groups customers by a fixed, non-user-supplied column. Blank
// labels are excluded.
func (r *customerRepository) countBy(ctx context.Context, column string, country *string) ([]models.LabelCount, error) {
	var counts []models.LabelCount

	query := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select(fmt.Sprintf("%s AS label, COUNT(*) AS customer_count", column)).
		Where(fmt.Sprintf("%s IS NOT NULL AND %s <> ''", column, column))

	if country != nil {
		query = query.Where("country = ?", *country)
	}

	if err := query.Group(column).Order(column).Scan(&counts).Error; err != nil {
		return nil, err
	}

	return counts, nil
}
