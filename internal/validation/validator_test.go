package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email,allowed_domain"`
	FullName string `json:"fullName" validate:"not_blank,max=200"`
}

type roleChange struct {
	Role string `json:"role" validate:"role_name"`
}

func TestValidator_AllowedDomain(t *testing.T) {
	v := NewValidator([]string{"gmail.com", " Yahoo.com "})

	assert.NoError(t, v.Struct(signup{Email: "lead@gmail.com", FullName: "Lead"}))
	assert.NoError(t, v.Struct(signup{Email: "lead@YAHOO.com", FullName: "Lead"}))

	err := v.Struct(signup{Email: "lead@example.com", FullName: "Lead"})
	require.Error(t, err)
	assert.Equal(t, []string{"email: email domain is not allowed"}, FormatErrors(err))
}

func TestValidator_AnyDomainWhenListEmpty(t *testing.T) {
	v := NewValidator(nil)

	assert.NoError(t, v.Struct(signup{Email: "lead@example.com", FullName: "Lead"}))
}

func TestValidator_NotBlank(t *testing.T) {
	v := NewValidator(nil)

	err := v.Struct(signup{Email: "lead@gmail.com", FullName: "   "})
	require.Error(t, err)
	assert.Equal(t, []string{"fullName: is required"}, FormatErrors(err))
}

func TestValidator_RoleName(t *testing.T) {
	v := NewValidator(nil)

	tests := []struct {
		name  string
		role  string
		valid bool
	}{
		{"known role", "Business Leader", true},
		{"custom role", "Auditor", true},
		{"blank", "  ", false},
		{"too long", strings.Repeat("r", maxRoleLength+1), false},
		{"control character", "Admin\x00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(roleChange{Role: tt.role})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatErrors_NonValidationError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatErrors(errors.New("boom")))
}
