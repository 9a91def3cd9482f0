package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RolePending          = "Pending"
	RoleAdmin            = "Admin"
	RoleBusinessLeader   = "Business Leader"
	RoleMarketingAnalyst = "Marketing Analyst"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is a dashboard login. Role is an open string assigned by an
// administrator; new registrations start as RolePending.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string     `gorm:"type:varchar(200);not null" json:"fullName"`
	Role         string     `gorm:"type:varchar(50);not null;default:'Pending';index" json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	if u.Role == "" {
		u.Role = RolePending
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}

	if !IsValidEmail(u.Email) {
		return errors.New("invalid email format")
	}

	if strings.TrimSpace(u.FullName) == "" {
		return errors.New("full name is required")
	}

	if strings.TrimSpace(u.Role) == "" {
		return errors.New("role is required")
	}

	return nil
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// EmailDomain returns the lower-cased part after the last '@'.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

func (u *User) UpdateLastLogin() {
	now := time.Now().UTC()
	u.LastLoginAt = &now
}

// IsAdmin and IsPending compare case-insensitively; roles are typed in
// by administrators.
func (u *User) IsAdmin() bool {
	return strings.EqualFold(u.Role, RoleAdmin)
}

func (u *User) IsPending() bool {
	return strings.EqualFold(u.Role, RolePending)
}

func (u *User) TableName() string {
	return "users"
}
