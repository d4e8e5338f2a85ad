package middleware

import (
	"github.com/labstack/echo/v4"
)

// HeaderAPIVersion carries the served API version on every response.
const HeaderAPIVersion = "X-API-Version"

// APIVersion describes the API surface advertised by the server root.
type APIVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Prefix  string `json:"prefix"`
}

// CurrentAPIVersion is the version of the /api/v1 routes.
var CurrentAPIVersion = APIVersion{
	Name:    "nexuscrm",
	Version: "1.0.0",
	Prefix:  "/api/v1",
}

// APIVersionMiddleware adds the version header to all responses.
func APIVersionMiddleware(version APIVersion) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(HeaderAPIVersion, version.Version)
			return next(c)
		}
	}
}
