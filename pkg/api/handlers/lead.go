package handlers

import (
	"net/http"

	"github.com/jordanlanch/nexuscrm/pkg/api/errors"
	"github.com/jordanlanch/nexuscrm/pkg/leads"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/labstack/echo/v4"
)

// LeadListResponse is the body of GET /leads.
type LeadListResponse struct {
	Data  []models.Lead `json:"data"`
	Total int           `json:"total"`
}

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadService *leads.Service
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *leads.Service) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// List godoc
// @Summary List leads
// @Description Lists leads matching a free-text query, stage, or feed attribution.
// @Tags Leads
// @Produce json
// @Param q query string false "Matches name, company or email"
// @Param stage query string false "Pipeline stage"
// @Param feed_id query string false "Only leads linked to this feed item"
// @Success 200 {object} LeadListResponse
// @Router /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	var f leads.Filter
	if err := c.Bind(&f); err != nil {
		return errors.ValidationError(c, err)
	}

	result := h.leadService.List(f)
	return c.JSON(http.StatusOK, LeadListResponse{Data: result, Total: len(result)})
}

// Create godoc
// @Summary Create a lead
// @Description Creates a lead owned by the current user in the New Lead stage.
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body leads.CreateLeadRequest true "Lead form"
// @Success 201 {object} models.Lead
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req leads.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	lead, err := h.leadService.Create(c.Request().Context(), req)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, lead)
}

// Get returns a single lead.
func (h *LeadHandler) Get(c echo.Context) error {
	lead, err := h.leadService.Get(c.Param("id"))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// Update applies a partial update. Stage changes go through the stage endpoint.
func (h *LeadHandler) Update(c echo.Context) error {
	var upd models.LeadUpdate
	if err := c.Bind(&upd); err != nil {
		return errors.ValidationError(c, err)
	}

	lead, err := h.leadService.Update(c.Param("id"), upd)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}
