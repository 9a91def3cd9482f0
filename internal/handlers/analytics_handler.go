package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apierrors "bank-dashboard/internal/errors"
	"bank-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the dashboard chart data
type AnalyticsHandler struct {
	charts       services.ChartResolverInterface
	transactions services.TransactionAnalyticsInterface
	loans        services.LoanAnalyticsInterface
	cohorts      services.CohortAnalyticsInterface
	insights     services.CustomerInsightsInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	charts services.ChartResolverInterface,
	transactions services.TransactionAnalyticsInterface,
	loans services.LoanAnalyticsInterface,
	cohorts services.CohortAnalyticsInterface,
	insights services.CustomerInsightsInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		charts:       charts,
		transactions: transactions,
		loans:        loans,
		cohorts:      cohorts,
		insights:     insights,
	}
}

// GetCharts lists the charts a role may see
// @Summary Charts visible to a role
// @Tags Analytics
// @Produce json
// @Param role query string true "Dashboard role"
// @Success 200 {array} models.ChartDescriptor
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - role is required"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/charts [get]
func (h *AnalyticsHandler) GetCharts(c echo.Context) error {
	role := strings.TrimSpace(c.QueryParam("role"))
	if role == "" {
		return SendMissingParameter(c, "role")
	}

	charts, err := h.charts.Resolve(c.Request().Context(), role)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, charts)
}

// GetTransactions returns monthly totals per channel for a year
// @Summary Monthly transaction totals by channel
// @Tags Analytics
// @Produce json
// @Param year query int true "Calendar year"
// @Success 200 {object} models.TransactionSeries
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002/003 - year missing or not a number"
// @Failure 404 {object} errors.ErrorResponse "ANALYTICS_001 - No transactions in year"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/transactions [get]
func (h *AnalyticsHandler) GetTransactions(c echo.Context) error {
	year, ok, err := yearParam(c)
	if !ok {
		return err
	}

	series, err := h.transactions.Aggregate(c.Request().Context(), year)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, series)
}

// GetLoans returns count and amount per loan type for a year
// @Summary Loan distribution by type
// @Tags Analytics
// @Produce json
// @Param year query int true "Calendar year"
// @Success 200 {object} models.LoanDistribution
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002/003 - year missing or not a number"
// @Failure 404 {object} errors.ErrorResponse "ANALYTICS_001 - No loans in year"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/loans [get]
func (h *AnalyticsHandler) GetLoans(c echo.Context) error {
	year, ok, err := yearParam(c)
	if !ok {
		return err
	}

	dist, err := h.loans.Aggregate(c.Request().Context(), year)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dist)
}

// GetCustomerCohorts returns new customers per year and zone
// @Summary Customer cohorts by zone
// @Tags Analytics
// @Produce json
// @Param country query string false "Country filter"
// @Success 200 {object} models.CustomerCohorts
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/customer-cohorts [get]
func (h *AnalyticsHandler) GetCustomerCohorts(c echo.Context) error {
	cohorts, err := h.cohorts.Aggregate(c.Request().Context(), optionalQueryParam(c, "country"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, cohorts)
}

// GetCountries lists the distinct customer countries
// @Summary Customer countries
// @Tags Analytics
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/countries [get]
func (h *AnalyticsHandler) GetCountries(c echo.Context) error {
	countries, err := h.insights.Countries(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, countries)
}

// GetCustomerSegments counts customers per income level and segment
// @Summary Customer income and segment mix
// @Tags Analytics
// @Produce json
// @Param country query string false "Country filter"
// @Success 200 {object} models.SegmentBreakdown
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/customer-segments [get]
func (h *AnalyticsHandler) GetCustomerSegments(c echo.Context) error {
	breakdown, err := h.insights.Segments(c.Request().Context(), optionalQueryParam(c, "country"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, breakdown)
}

// yearParam parses the required year query parameter. When ok is false
// the error response has been written and err is what the handler returns.
func yearParam(c echo.Context) (year int, ok bool, err error) {
	raw := strings.TrimSpace(c.QueryParam("year"))
	if raw == "" {
		return 0, false, SendMissingParameter(c, "year")
	}

	year, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, false, SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("year: must be an integer"))
	}

	return year, true, nil
}

func (h *AnalyticsHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrMissingParameter) {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails(err.Error()))
	}

	if errors.Is(err, services.ErrNoData) {
		return SendError(c, apierrors.AnalyticsNoData)
	}

	return SendSystemError(c, err)
}
