package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4/middleware"
)

// DefaultAllowedOrigins are the dashboard origins used in development.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

// AllowedMethods lists the methods the CRM API exposes to browsers.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CORSConfig returns the CORS configuration for the given origins. An empty
// list falls back to DefaultAllowedOrigins.
func CORSConfig(allowedOrigins []string) middleware.CORSConfig {
	origins := allowedOrigins
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}

	return middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     AllowedMethods,
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
		ExposeHeaders: []string{
			"Content-Disposition",
			HeaderAPIVersion,
		},
	}
}
