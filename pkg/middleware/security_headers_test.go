package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runSecurityHeaders(t *testing.T, cfg SecurityHeadersConfig, path string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, SecurityHeaders(cfg)(next)(c)
}

func TestSecurityHeaders(t *testing.T) {
	t.Run("Success - json api defaults", func(t *testing.T) {
		rec, err := runSecurityHeaders(t, SecurityHeadersConfig{}, "/api/v1/leads", ok)
		assert.NoError(t, err)

		h := rec.Header()
		assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", h.Get("Content-Security-Policy"))
		assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
		assert.Equal(t, "no-referrer", h.Get("Referrer-Policy"))
		assert.Equal(t, "same-site", h.Get("Cross-Origin-Resource-Policy"))
		assert.Equal(t, "no-store", h.Get("Cache-Control"))
		assert.Empty(t, h.Get("Strict-Transport-Security"))
	})

	t.Run("Success - hsts when configured", func(t *testing.T) {
		rec, err := runSecurityHeaders(t, SecurityHeadersConfig{HSTSMaxAge: 31536000}, "/api/v1/leads", ok)
		assert.NoError(t, err)

		assert.Equal(t, "max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
	})

	t.Run("Success - custom cache control", func(t *testing.T) {
		rec, err := runSecurityHeaders(t, SecurityHeadersConfig{CacheControl: "private, max-age=60"}, "/api/v1/dashboard", ok)
		assert.NoError(t, err)

		assert.Equal(t, "private, max-age=60", rec.Header().Get("Cache-Control"))
	})

	t.Run("Success - skipped path untouched", func(t *testing.T) {
		cfg := SecurityHeadersConfig{Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/metrics"
		}}

		rec, err := runSecurityHeaders(t, cfg, "/metrics", ok)
		assert.NoError(t, err)

		assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
		assert.Empty(t, rec.Header().Get("Cache-Control"))
	})

	t.Run("Error - handler error keeps headers", func(t *testing.T) {
		rec, err := runSecurityHeaders(t, SecurityHeadersConfig{}, "/api/v1/leads", func(c echo.Context) error {
			return echo.ErrInternalServerError
		})

		assert.Error(t, err)
		assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	})
}
