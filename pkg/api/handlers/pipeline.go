package handlers

import (
	"net/http"

	"github.com/jordanlanch/nexuscrm/pkg/api/errors"
	"github.com/jordanlanch/nexuscrm/pkg/leadlifecycle"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/labstack/echo/v4"
)

// PipelineHandler handles stage transitions and the Kanban board.
type PipelineHandler struct {
	service *leadlifecycle.Service
}

// NewPipelineHandler creates a new pipeline handler.
func NewPipelineHandler(service *leadlifecycle.Service) *PipelineHandler {
	return &PipelineHandler{service: service}
}

// MoveStage godoc
// @Summary Move a lead to another stage
// @Description Moves the lead and records a Status Change activity. Moving to the current stage is a no-op.
// @Tags Pipeline
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body leadlifecycle.MoveStageRequest true "Target stage"
// @Success 200 {object} models.Lead
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leads/{id}/stage [post]
func (h *PipelineHandler) MoveStage(c echo.Context) error {
	var req leadlifecycle.MoveStageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	lead, err := h.service.MoveStage(c.Param("id"), models.DealStage(req.Stage))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// Drop resolves a card dropped on a column or on another card.
func (h *PipelineHandler) Drop(c echo.Context) error {
	var req leadlifecycle.DropRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	lead, err := h.service.Drop(req)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// Board returns the Kanban columns.
func (h *PipelineHandler) Board(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Board())
}

// History returns the stage changes of a lead, newest first.
func (h *PipelineHandler) History(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.History(c.Param("id")))
}
