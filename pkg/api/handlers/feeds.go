package handlers

import (
	"net/http"

	"github.com/jordanlanch/nexuscrm/pkg/api/errors"
	"github.com/jordanlanch/nexuscrm/pkg/feeds"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles content feed endpoints.
type FeedHandler struct {
	service *feeds.Service
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(service *feeds.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

// List returns feed items, optionally filtered by ?type=.
func (h *FeedHandler) List(c echo.Context) error {
	items, err := h.service.List(c.QueryParam("type"))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns one feed item.
func (h *FeedHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Param("id"))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Link attributes a lead to a feed item.
func (h *FeedHandler) Link(c echo.Context) error {
	var req feeds.LinkRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.service.Link(c.Param("id"), req)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// LinkedLeads returns the leads attributed to a feed item.
func (h *FeedHandler) LinkedLeads(c echo.Context) error {
	result, err := h.service.LinkedLeads(c.Param("id"))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, LeadListResponse{Data: result, Total: len(result)})
}
