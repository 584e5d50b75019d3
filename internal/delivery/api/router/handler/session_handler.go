package handler

import (
	"net/http"

	"walletportal/internal/delivery/api/response"
	"walletportal/internal/delivery/presenter"
	"walletportal/internal/domain/entity"
	"walletportal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler serves the browser session lifecycle.
type SessionHandler struct {
	sessions usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(sessions usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// SwitchViewRequest represents the request body for switching views
type SwitchViewRequest struct {
	View string `json:"view" validate:"required"`
}

// Start is called by the front end on every application load.
func (h *SessionHandler) Start(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.sessions.Start(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.Session(status))
}

func (h *SessionHandler) Status(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.sessions.Status(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.Session(status))
}

func (h *SessionHandler) SwitchView(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SwitchViewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.sessions.SwitchView(c.Request().Context(), id, entity.View(req.View))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.Session(status))
}

func (h *SessionHandler) Logout(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.sessions.Logout(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.Session(status))
}
