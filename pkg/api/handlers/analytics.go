package handlers

import (
	"net/http"

	"github.com/jordanlanch/nexuscrm/pkg/analytics"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the dashboard and the derived pipeline views.
type AnalyticsHandler struct {
	service *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Dashboard godoc
// @Summary Dashboard summary
// @Description Totals, revenue, average AI score, ad spend, ROI and predicted revenue.
// @Tags Analytics
// @Produce json
// @Success 200 {object} analytics.Summary
// @Router /dashboard [get]
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Dashboard())
}

// Funnel returns lead counts and deal value per stage.
func (h *AnalyticsHandler) Funnel(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Funnel())
}

// Sources returns lead counts and conversion per source.
func (h *AnalyticsHandler) Sources(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Sources())
}

// Campaigns returns campaigns with budget and conversion figures.
func (h *AnalyticsHandler) Campaigns(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Campaigns())
}
