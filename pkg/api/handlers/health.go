package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/middleware"
	"github.com/jordanlanch/nexuscrm/pkg/store"
	"github.com/labstack/echo/v4"
)

// Pinger is an optional dependency checked by /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves / and /health.
type HealthHandler struct {
	store       *store.Store
	clock       domain.Clock
	environment string
	deps        map[string]Pinger
}

// NewHealthHandler creates a new health handler. deps maps a component name
// to its connectivity check.
func NewHealthHandler(s *store.Store, clock domain.Clock, environment string, deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{store: s, clock: clock, environment: environment, deps: deps}
}

// Root describes the running service.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"name":        middleware.CurrentAPIVersion.Name,
		"version":     middleware.CurrentAPIVersion.Version,
		"api":         middleware.CurrentAPIVersion.Prefix,
		"status":      "running",
		"environment": h.environment,
		"timestamp":   h.clock.Now().Unix(),
	})
}

// Health reports the store size and the state of each dependency.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := map[string]any{
		"status": "healthy",
		"leads":  len(h.store.Leads()),
	}
	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body[name] = "down"
			continue
		}
		body[name] = "up"
	}
	return c.JSON(status, body)
}
