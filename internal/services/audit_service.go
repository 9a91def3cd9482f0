package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidAuditSubject = errors.New("audit subject is required")
)

// ValidateActivityType validates that the action is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionRegister:    true,
		models.AuditActionLogin:       true,
		models.AuditActionFailedLogin: true,
		models.AuditActionRoleUpdated: true,
		models.AuditActionNameUpdated: true,
		models.AuditActionUserDeleted: true,
		models.AuditActionAdminSeeded: true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// Record stores one audit entry about subject
func (s *AuditService) Record(ctx context.Context, subject, action, ipAddress string, metadata map[string]interface{}) error {
	if strings.TrimSpace(subject) == "" {
		return ErrInvalidAuditSubject
	}

	if err := ValidateActivityType(action); err != nil {
		return err
	}

	entry := &models.AuditLog{
		Subject:   subject,
		Action:    action,
		Resource:  models.AuditResourceUser,
		IPAddress: ipAddress,
	}
	for key, value := range metadata {
		entry.SetMetadata(key, value)
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// History returns the newest entries about subject first
func (s *AuditService) History(ctx context.Context, subject string, limit int) ([]*models.AuditLog, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, ErrInvalidAuditSubject
	}

	logs, err := s.repo.ListBySubject(ctx, subject, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit history: %w", err)
	}

	return logs, nil
}
