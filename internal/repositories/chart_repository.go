package repositories

import (
	"context"
	"errors"
	"fmt"

	"bank-dashboard/internal/models"

	"gorm.io/gorm"
)

type ChartRepository struct {
	db *gorm.DB
}

func NewChartRepository(db *gorm.DB) ChartRepositoryInterface {
	return &ChartRepository{
		db: db,
	}
}

func (r *ChartRepository) Create(ctx context.Context, chart *models.Chart) error {
	if chart == nil {
		return errors.New("chart cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(chart).Error; err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}

	return nil
}

// ListAll returns every chart ordered by id.
func (r *ChartRepository) ListAll(ctx context.Context) ([]models.Chart, error) {
	var charts []models.Chart
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&charts).Error; err != nil {
		return nil, fmt.Errorf("failed to list charts: %w", err)
	}

	return charts, nil
}

// ListByRole returns the charts whose allowed-role set contains role, in
// id order. Membership is checked after loading so the same code runs on
// every dialect; the catalogue is small.
func (r *ChartRepository) ListByRole(ctx context.Context, role string) ([]models.Chart, error) {
	charts, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]models.Chart, 0, len(charts))
	for i := range charts {
		if charts[i].VisibleTo(role) {
			visible = append(visible, charts[i])
		}
	}

	return visible, nil
}
