package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithSecurityHeaders(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestSecurityHeaders(t *testing.T) {
	rec := serveWithSecurityHeaders(t, "/api/transactions?year=2023")
	headers := rec.Header()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
	assert.Empty(t, headers.Get("Cache-Control"))
}

func TestSecurityHeaders_UserPathsNotCached(t *testing.T) {
	for _, path := range []string{"/api/login", "/api/signup", "/api/users", "/api/users/dana@gmail.com/role"} {
		rec := serveWithSecurityHeaders(t, path)

		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"), path)
		assert.Equal(t, "no-cache", rec.Header().Get("Pragma"), path)
	}
}
