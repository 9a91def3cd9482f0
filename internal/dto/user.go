package dto

import (
	"time"

	"bank-dashboard/internal/models"
)

// User directory request DTOs

// SignupRequest contains user registration data
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,allowed_domain"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"fullName" validate:"not_blank,max=200"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateRoleRequest assigns a dashboard role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"role_name"`
}

// UpdateNameRequest renames a user
type UpdateNameRequest struct {
	FullName string `json:"fullName" validate:"not_blank,max=200"`
}

// User directory response DTOs

// UserResponse is the public view of a dashboard user
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// LoginResponse carries the profile of an approved user
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ActivityResponse is one audit entry about a user
type ActivityResponse struct {
	Action    string                 `json:"action"`
	IPAddress string                 `json:"ipAddress,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// ToUserResponse converts a user model to its public view
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        user.Role,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// ToUserResponses converts a list of user models
func ToUserResponses(users []*models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}

// ToActivityResponses converts audit entries, newest first as given
func ToActivityResponses(logs []*models.AuditLog) []ActivityResponse {
	responses := make([]ActivityResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, ActivityResponse{
			Action:    log.Action,
			IPAddress: log.IPAddress,
			Metadata:  log.Metadata,
			CreatedAt: log.CreatedAt,
		})
	}
	return responses
}
