package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"bank-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

const maxRoleLength = 50

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate       *validator.Validate
	allowedDomains []string
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a validator with the dashboard rules registered. An
// empty allowedDomains list lets any email domain through allowed_domain.
func NewValidator(allowedDomains []string) *Validator {
	v := &Validator{validate: validator.New()}

	for _, domain := range allowedDomains {
		if domain = strings.ToLower(strings.TrimSpace(domain)); domain != "" {
			v.allowedDomains = append(v.allowedDomains, domain)
		}
	}

	_ = v.validate.RegisterValidation("allowed_domain", v.validateAllowedDomain)
	_ = v.validate.RegisterValidation("role_name", validateRoleName)
	_ = v.validate.RegisterValidation("not_blank", validateNotBlank)

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(i interface{}) error {
	return v.validate.Struct(i)
}

// validateAllowedDomain checks the part after the last '@' against the
// configured list
func (v *Validator) validateAllowedDomain(fl validator.FieldLevel) bool {
	if len(v.allowedDomains) == 0 {
		return true
	}
	domain := models.EmailDomain(strings.TrimSpace(fl.Field().String()))
	return slices.Contains(v.allowedDomains, domain)
}

// validateRoleName accepts any printable, non-blank role up to 50 characters
func validateRoleName(fl validator.FieldLevel) bool {
	role := strings.TrimSpace(fl.Field().String())
	if role == "" || len(role) > maxRoleLength {
		return false
	}
	for _, r := range role {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// FormatErrors turns validator errors into "field: message" details. Any
// other error is returned as its message.
func FormatErrors(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fieldErr.Field(), FormatFieldError(fieldErr)))
	}
	return details
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "not_blank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "allowed_domain":
		return "email domain is not allowed"
	case "role_name":
		return fmt.Sprintf("must be a non-blank role of at most %d characters", maxRoleLength)
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
