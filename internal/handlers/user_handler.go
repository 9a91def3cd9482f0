package handlers

import (
	"errors"
	"net/http"

	"bank-dashboard/internal/dto"
	apierrors "bank-dashboard/internal/errors"
	"bank-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles dashboard user registration, login and role
// administration
type UserHandler struct {
	directory services.UserDirectoryInterface
	charts    services.ChartResolverInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(directory services.UserDirectoryInterface, charts services.ChartResolverInterface) *UserHandler {
	return &UserHandler{
		directory: directory,
		charts:    charts,
	}
}

// Signup registers a user awaiting role assignment
// @Summary Register a dashboard user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Registration details"
// @Success 201 {object} SuccessResponse "User registered, waiting for role assignment"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid input"
// @Failure 409 {object} errors.ErrorResponse "USER_002 - Email already registered"
// @Router /api/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.directory.Register(c.Request().Context(), req.Email, req.Password, req.FullName, getClientIP(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: "User registered successfully. Waiting for role assignment.",
		Data:    dto.ToUserResponse(user),
	})
}

// Login checks credentials and returns the user's profile
// @Summary Log in
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid credentials"
// @Failure 403 {object} errors.ErrorResponse "AUTH_007 - Pending approval"
// @Router /api/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.directory.Authenticate(c.Request().Context(), req.Email, req.Password, getClientIP(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.ToUserResponse(user),
	})
}

// ListUsers lists users, optionally filtered by exact role
// @Summary List users
// @Tags Users
// @Produce json
// @Param role query string false "Role filter"
// @Success 200 {array} dto.UserResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.directory.List(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// UpdateRole assigns a role
// @Summary Update a user's role
// @Tags Users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Role is required"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /api/users/{email}/role [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req dto.UpdateRoleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.directory.UpdateRole(c.Request().Context(), emailParam(c), req.Role, getClientIP(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "User role updated successfully",
		Data:    dto.ToUserResponse(user),
	})
}

// UpdateName renames a user
// @Summary Update a user's full name
// @Tags Users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body dto.UpdateNameRequest true "New full name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Full name is required"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /api/users/{email}/name [put]
func (h *UserHandler) UpdateName(c echo.Context) error {
	var req dto.UpdateNameRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.directory.UpdateName(c.Request().Context(), emailParam(c), req.FullName, getClientIP(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "User full name updated successfully",
		Data:    dto.ToUserResponse(user),
	})
}

// DeleteUser removes a non-admin user
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse "USER_003 - Admin users cannot be deleted"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /api/users/{email} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.directory.Delete(c.Request().Context(), emailParam(c), getClientIP(c)); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "User deleted successfully",
	})
}

// GetUserCharts resolves the charts visible to a user through their role
// @Summary Charts visible to a user
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {array} models.ChartDescriptor
// @Failure 403 {object} errors.ErrorResponse "AUTH_007 - Pending approval"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /api/users/{email}/charts [get]
func (h *UserHandler) GetUserCharts(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.directory.Get(ctx, emailParam(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	if user.IsPending() {
		return SendError(c, apierrors.AuthPendingApproval)
	}

	charts, err := h.charts.Resolve(ctx, user.Role)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, charts)
}

// GetUserActivity returns a user's audit trail, newest first
// @Summary User activity history
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Param limit query int false "Entries to return (max 100)" default(20)
// @Success 200 {array} dto.ActivityResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Limit out of range"
// @Router /api/users/{email}/activity [get]
func (h *UserHandler) GetUserActivity(c echo.Context) error {
	limit := getIntParam(c, "limit", defaultActivityLimit)
	if limit < 1 || limit > maxActivityLimit {
		return SendError(c, apierrors.ValidationOutOfRange,
			apierrors.WithDetails("limit: must be between 1 and 100"))
	}

	logs, err := h.directory.Activity(c.Request().Context(), emailParam(c), limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToActivityResponses(logs))
}

func (h *UserHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingParameter):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidEmail):
		return SendError(c, apierrors.ValidationInvalidEmail)
	case errors.Is(err, services.ErrEmailDomainNotAllowed):
		return SendError(c, apierrors.ValidationEmailDomain)
	case errors.Is(err, services.ErrPasswordTooShort):
		return SendError(c, apierrors.ValidationPasswordTooShort, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrPasswordEmpty), errors.Is(err, services.ErrPasswordTooLong):
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrUserAlreadyExists):
		return SendError(c, apierrors.UserAlreadyExists)
	case errors.Is(err, services.ErrUserNotFound):
		return SendError(c, apierrors.UserNotFound)
	case errors.Is(err, services.ErrProtectedUser):
		return SendError(c, apierrors.UserProtected)
	case errors.Is(err, services.ErrInvalidCredentials):
		return SendError(c, apierrors.AuthInvalidCredentials)
	case errors.Is(err, services.ErrPendingApproval):
		return SendError(c, apierrors.AuthPendingApproval)
	default:
		return SendSystemError(c, err)
	}
}
