package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"bank-dashboard/internal/models"
	"bank-dashboard/internal/repositories"
)

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrPendingApproval       = errors.New("account is pending approval")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserAlreadyExists     = errors.New("user with this email already exists")
	ErrProtectedUser         = errors.New("cannot delete Admin User")
	ErrInvalidEmail          = errors.New("invalid email address format")
	ErrEmailDomainNotAllowed = errors.New("email domain is not allowed")
)

// UserDirectory handles dashboard user registration, login and role
// administration. Emails are stored trimmed and lower-cased.
type UserDirectory struct {
	userRepo        repositories.UserRepositoryInterface
	auditService    AuditServiceInterface
	passwordService PasswordServiceInterface
	allowedDomains  []string
	events          AnalyticsLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewUserDirectory creates a user directory. An empty allowedDomains list
// accepts any domain.
func NewUserDirectory(
	userRepo repositories.UserRepositoryInterface,
	auditService AuditServiceInterface,
	passwordService PasswordServiceInterface,
	allowedDomains []string,
	events AnalyticsLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UserDirectoryInterface {
	domains := make([]string, 0, len(allowedDomains))
	for _, domain := range allowedDomains {
		if domain = strings.ToLower(strings.TrimSpace(domain)); domain != "" {
			domains = append(domains, domain)
		}
	}

	return &UserDirectory{
		userRepo:        userRepo,
		auditService:    auditService,
		passwordService: passwordService,
		allowedDomains:  domains,
		events:          events,
		metrics:         metrics,
		logger:          logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user in the Pending role
func (d *UserDirectory) Register(ctx context.Context, email, password, fullName, ipAddress string) (*models.User, error) {
	email = normalizeEmail(email)
	fullName = strings.TrimSpace(fullName)

	switch {
	case email == "":
		return nil, fmt.Errorf("%w: email", ErrMissingParameter)
	case password == "":
		return nil, fmt.Errorf("%w: password", ErrMissingParameter)
	case fullName == "":
		return nil, fmt.Errorf("%w: fullName", ErrMissingParameter)
	}

	if !models.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	if len(d.allowedDomains) > 0 && !slices.Contains(d.allowedDomains, models.EmailDomain(email)) {
		return nil, ErrEmailDomainNotAllowed
	}

	if err := d.passwordService.ValidatePassword(password); err != nil {
		return nil, err
	}

	hashedPassword, err := d.passwordService.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     fullName,
		Role:         models.RolePending,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	d.recordEvent(ctx, email, models.AuditActionRegister, ipAddress, nil)
	return user, nil
}

// Authenticate checks credentials. Pending users are rejected even with
// a correct password.
func (d *UserDirectory) Authenticate(ctx context.Context, email, password, ipAddress string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password", ErrMissingParameter)
	}

	user, err := d.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			d.metrics.IncrementCounter(MetricUserDirectory, map[string]string{"event": models.AuditActionFailedLogin})
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !d.passwordService.ComparePassword(password, user.PasswordHash) {
		d.recordEvent(ctx, email, models.AuditActionFailedLogin, ipAddress, nil)
		return nil, ErrInvalidCredentials
	}

	if user.IsPending() {
		return nil, ErrPendingApproval
	}

	user.UpdateLastLogin()
	if err := d.userRepo.UpdateFields(ctx, email, map[string]interface{}{"last_login_at": user.LastLoginAt}); err != nil {
		d.logger.Warn("failed to record last login", "email", maskEmail(email), "error", err)
	}

	d.recordEvent(ctx, email, models.AuditActionLogin, ipAddress, nil)
	return user, nil
}

func (d *UserDirectory) Get(ctx context.Context, email string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingParameter)
	}

	user, err := d.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// List returns users ordered by email, optionally only those with role
func (d *UserDirectory) List(ctx context.Context, role string) ([]*models.User, error) {
	users, err := d.userRepo.List(ctx, strings.TrimSpace(role))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

func (d *UserDirectory) UpdateRole(ctx context.Context, email, role, ipAddress string) (*models.User, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, fmt.Errorf("%w: role", ErrMissingParameter)
	}

	user, err := d.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	previous := user.Role
	if err := d.updateFields(ctx, user.Email, map[string]interface{}{"role": role}); err != nil {
		return nil, err
	}
	user.Role = role

	d.recordEvent(ctx, user.Email, models.AuditActionRoleUpdated, ipAddress, map[string]interface{}{
		"old_role": previous,
		"new_role": role,
	})
	return user, nil
}

func (d *UserDirectory) UpdateName(ctx context.Context, email, fullName, ipAddress string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: fullName", ErrMissingParameter)
	}

	user, err := d.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := d.updateFields(ctx, user.Email, map[string]interface{}{"full_name": fullName}); err != nil {
		return nil, err
	}
	user.FullName = fullName

	d.recordEvent(ctx, user.Email, models.AuditActionNameUpdated, ipAddress, nil)
	return user, nil
}

// Delete removes a user. Admins are protected.
func (d *UserDirectory) Delete(ctx context.Context, email, ipAddress string) error {
	user, err := d.Get(ctx, email)
	if err != nil {
		return err
	}

	if user.IsAdmin() {
		return ErrProtectedUser
	}

	if err := d.userRepo.Delete(ctx, user.Email); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	d.recordEvent(ctx, user.Email, models.AuditActionUserDeleted, ipAddress, map[string]interface{}{
		"role": user.Role,
	})
	return nil
}

// Activity returns the audit trail for email, newest first. The trail
// outlives the user.
func (d *UserDirectory) Activity(ctx context.Context, email string, limit int) ([]*models.AuditLog, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingParameter)
	}

	logs, err := d.auditService.History(ctx, email, limit)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*models.AuditLog{}
	}
	return logs, nil
}

// EnsureAdmin makes sure email exists with the Admin role. An existing
// user is promoted and keeps their password; otherwise one is created.
func (d *UserDirectory) EnsureAdmin(ctx context.Context, email, password, fullName string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: admin email", ErrMissingParameter)
	}

	user, err := d.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if user.IsAdmin() {
			return nil
		}
		if err := d.updateFields(ctx, email, map[string]interface{}{"role": models.RoleAdmin}); err != nil {
			return err
		}
	case errors.Is(err, repositories.ErrUserNotFound):
		hashedPassword, err := d.passwordService.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if strings.TrimSpace(fullName) == "" {
			fullName = "Administrator"
		}
		admin := &models.User{
			Email:        email,
			PasswordHash: hashedPassword,
			FullName:     strings.TrimSpace(fullName),
			Role:         models.RoleAdmin,
		}
		if err := d.userRepo.Create(ctx, admin); err != nil && !errors.Is(err, repositories.ErrUserAlreadyExists) {
			return fmt.Errorf("failed to create admin: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	d.recordEvent(ctx, email, models.AuditActionAdminSeeded, "", nil)
	return nil
}

func (d *UserDirectory) updateFields(ctx context.Context, email string, fields map[string]interface{}) error {
	if err := d.userRepo.UpdateFields(ctx, email, fields); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// recordEvent logs, counts and audits a directory event. Audit failures
// are logged and never fail the operation.
func (d *UserDirectory) recordEvent(ctx context.Context, email, action, ipAddress string, metadata map[string]interface{}) {
	d.events.LogUserEvent(ctx, action, email)
	d.metrics.IncrementCounter(MetricUserDirectory, map[string]string{"event": action})

	if err := d.auditService.Record(ctx, email, action, ipAddress, metadata); err != nil {
		d.logger.Error("failed to write audit log", "action", action, "email", maskEmail(email), "error", err)
	}
}
