package repositories

import (
	"context"
	"errors"
	"fmt"

	"bank-dashboard/internal/models"

	"gorm.io/gorm"
)

const defaultAuditLimit = 50

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{
		db: db,
	}
}

func (r *AuditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// ListBySubject returns the newest entries for subject first. A
// non-positive limit falls back to 50.
func (r *AuditLogRepository) ListBySubject(ctx context.Context, subject string, limit int) ([]*models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	var logs []*models.AuditLog
	if err := r.db.WithContext(ctx).
		Where("subject = ?", subject).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	return logs, nil
}
