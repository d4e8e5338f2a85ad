package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// jsonAPIPolicy forbids every fetch directive; responses are never HTML.
const jsonAPIPolicy = "default-src 'none'; frame-ancestors 'none'"

// SecurityHeadersConfig configures SecurityHeaders. Zero values take the
// JSON API defaults.
type SecurityHeadersConfig struct {
	Skipper middleware.Skipper

	// CacheControl defaults to no-store.
	CacheControl string

	// HSTSMaxAge enables Strict-Transport-Security when positive, in seconds.
	HSTSMaxAge int
}

// SecurityHeaders sets the response headers appropriate for a JSON API.
func SecurityHeaders(config SecurityHeadersConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}
	if config.CacheControl == "" {
		config.CacheControl = "no-store"
	}

	headers := [][2]string{
		{"Content-Security-Policy", jsonAPIPolicy},
		{echo.HeaderXContentTypeOptions, "nosniff"},
		{echo.HeaderXFrameOptions, "DENY"},
		{"Referrer-Policy", "no-referrer"},
		{"Cross-Origin-Resource-Policy", "same-site"},
		{"Cache-Control", config.CacheControl},
	}
	if config.HSTSMaxAge > 0 {
		headers = append(headers, [2]string{
			echo.HeaderStrictTransportSecurity,
			"max-age=" + strconv.Itoa(config.HSTSMaxAge) + "; includeSubDomains",
		})
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}
			h := c.Response().Header()
			for _, kv := range headers {
				h.Set(kv[0], kv[1])
			}
			return next(c)
		}
	}
}
