package handlers

import (
	"net/http"

	"github.com/jordanlanch/nexuscrm/pkg/activity"
	"github.com/jordanlanch/nexuscrm/pkg/api/errors"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/labstack/echo/v4"
)

// ActivityHandler handles the activity timeline of a lead.
type ActivityHandler struct {
	service *activity.Service
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(service *activity.Service) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List returns the activities of a lead, newest first.
func (h *ActivityHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListByLead(c.Param("id")))
}

// AddNote godoc
// @Summary Add a note
// @Description Records a note on the lead by the current user.
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body activity.CreateNoteRequest true "Note"
// @Success 201 {object} models.Activity
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leads/{id}/notes [post]
func (h *ActivityHandler) AddNote(c echo.Context) error {
	var req activity.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	a, err := h.service.AddNote(c.Param("id"), req)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// Log records a call, email, meeting or other touchpoint.
func (h *ActivityHandler) Log(c echo.Context) error {
	var req activity.LogActivityRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	a, err := h.service.Log(c.Param("id"), req)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// RequestInsight godoc
// @Summary Request an AI insight
// @Description Generates an outreach suggestion in the background. With wait=true the
// @Description suggestion is generated inline and returned.
// @Tags Activities
// @Produce json
// @Param id path string true "Lead ID"
// @Param wait query boolean false "Generate synchronously"
// @Success 201 {object} models.Activity
// @Success 202 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /leads/{id}/insights [post]
func (h *ActivityHandler) RequestInsight(c echo.Context) error {
	leadID := c.Param("id")

	if c.QueryParam("wait") == "true" {
		a, err := h.service.GenerateInsight(c.Request().Context(), leadID)
		if err != nil {
			return errors.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, a)
	}

	if err := h.service.RequestInsight(leadID); err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusAccepted, models.SuccessResponse{Message: "insight requested"})
}
