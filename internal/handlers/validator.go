package handlers

import (
	apierrors "bank-dashboard/internal/errors"
	"bank-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator(v *validation.Validator) echo.Validator {
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// bindAndValidate decodes the body into req and runs its validate tags.
// On failure the 400 response has already been written and ok is false.
func bindAndValidate(c echo.Context, req interface{}) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("request body must be valid JSON"))
	}

	if err := c.Validate(req); err != nil {
		traceID := getTraceID(c)
		errorResponse := apierrors.NewValidationErrorFromList(validation.FormatErrors(err), traceID)
		return false, c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	}

	return true, nil
}
