package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "bank-dashboard/internal/errors"
	"bank-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 response and
// counts it as an API error
func PanicRecovery(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				metrics.IncrementCounter(services.MetricAPIError, map[string]string{
					"code": string(apierrors.SystemInternalError),
				})

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, apierrors.NewErrorResponse(apierrors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
