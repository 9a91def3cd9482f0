package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid user",
			user:    User{Email: "test@gmail.com", FullName: "John Doe", Role: RolePending},
			wantErr: false,
		},
		{
			name:    "invalid email",
			user:    User{Email: "invalid-email", FullName: "John Doe", Role: RolePending},
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name:    "empty email",
			user:    User{Email: "", FullName: "John Doe", Role: RolePending},
			wantErr: true,
			errMsg:  "email is required",
		},
		{
			name:    "blank full name",
			user:    User{Email: "test@gmail.com", FullName: "  ", Role: RolePending},
			wantErr: true,
			errMsg:  "full name is required",
		},
		{
			name:    "missing role",
			user:    User{Email: "test@gmail.com", FullName: "John Doe"},
			wantErr: true,
			errMsg:  "role is required",
		},
		{
			name:    "free-form role",
			user:    User{Email: "test@gmail.com", FullName: "John Doe", Role: "Analyst"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUser_RolePredicates(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.True(t, (&User{Role: "admin"}).IsAdmin())
	assert.False(t, (&User{Role: "Business Leader"}).IsAdmin())
	assert.True(t, (&User{Role: RolePending}).IsPending())
	assert.True(t, (&User{Role: "pending"}).IsPending())
	assert.False(t, (&User{Role: "Manager"}).IsPending())
}

func TestUser_UpdateLastLogin(t *testing.T) {
	user := User{}
	user.UpdateLastLogin()
	assert.NotNil(t, user.LastLoginAt)
	assert.Equal(t, time.UTC, user.LastLoginAt.Location())
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "gmail.com", EmailDomain("someone@Gmail.com"))
	assert.Equal(t, "outlook.com", EmailDomain("a@b@outlook.com"))
	assert.Equal(t, "", EmailDomain("nobody"))
}

func TestChart_VisibleTo(t *testing.T) {
	chart := Chart{ID: 1, Description: "Loans", AllowedRoles: datatypes.JSONSlice[string]{"Admin", "Manager"}}

	assert.True(t, chart.VisibleTo("Manager"))
	assert.False(t, chart.VisibleTo("manager"))
	assert.False(t, chart.VisibleTo("Manage"))
	assert.False(t, chart.VisibleTo(""))
	assert.Equal(t, ChartDescriptor{ChartID: 1, Description: "Loans"}, chart.Descriptor())
}
