package handlers

import (
	"net/http"

	"github.com/jordanlanch/nexuscrm/pkg/api/errors"
	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
	"github.com/labstack/echo/v4"
)

// Session is the UI session state held by the store.
type Session struct {
	CurrentUser        *models.User `json:"currentUser"`
	SelectedLeadID     *string      `json:"selectedLeadId"`
	IsAddLeadModalOpen bool         `json:"isAddLeadModalOpen"`
}

// SetUserRequest selects the acting user. A null userId signs out.
type SetUserRequest struct {
	UserID *string `json:"userId"`
}

// SelectLeadRequest selects a lead. A null leadId clears the selection.
type SelectLeadRequest struct {
	LeadID *string `json:"leadId"`
}

// AddLeadModalRequest opens or closes the add-lead form.
type AddLeadModalRequest struct {
	Open bool `json:"open"`
}

// SessionHandler handles session state and the user directory.
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{store: s}
}

// Get returns the current session.
func (h *SessionHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.session())
}

// SetUser switches the acting user.
func (h *SessionHandler) SetUser(c echo.Context) error {
	var req SetUserRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if req.UserID == nil {
		h.store.SetCurrentUser(nil)
		return c.JSON(http.StatusOK, h.session())
	}

	user, ok := h.store.User(*req.UserID)
	if !ok {
		return errors.Respond(c, domain.NewNotFoundError("user"))
	}
	h.store.SetCurrentUser(&user)
	return c.JSON(http.StatusOK, h.session())
}

// SetSelectedLead selects or clears the focused lead.
func (h *SessionHandler) SetSelectedLead(c echo.Context) error {
	var req SelectLeadRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if req.LeadID != nil {
		if _, ok := h.store.Lead(*req.LeadID); !ok {
			return errors.Respond(c, domain.NewNotFoundError("lead"))
		}
	}
	h.store.SetSelectedLeadID(req.LeadID)
	return c.JSON(http.StatusOK, h.session())
}

// SetAddLeadModal opens or closes the add-lead form.
func (h *SessionHandler) SetAddLeadModal(c echo.Context) error {
	var req AddLeadModalRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	h.store.SetAddLeadModalOpen(req.Open)
	return c.JSON(http.StatusOK, h.session())
}

// Users returns the team directory.
func (h *SessionHandler) Users(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Users())
}

// User returns one user.
func (h *SessionHandler) User(c echo.Context) error {
	user, ok := h.store.User(c.Param("id"))
	if !ok {
		return errors.Respond(c, domain.NewNotFoundError("user"))
	}
	return c.JSON(http.StatusOK, user)
}

func (h *SessionHandler) session() Session {
	var sess Session
	if u, ok := h.store.CurrentUser(); ok {
		sess.CurrentUser = &u
	}
	if id, ok := h.store.SelectedLeadID(); ok {
		sess.SelectedLeadID = &id
	}
	sess.IsAddLeadModalOpen = h.store.IsAddLeadModalOpen()
	return sess
}
