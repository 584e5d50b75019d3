package handler

import (
	"net/http"

	"walletportal/internal/delivery/api/response"
	"walletportal/internal/delivery/presenter"
	"walletportal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler drives the email one-time-code flow of a session.
type AuthHandler struct {
	sessions usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(sessions usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// SubmitEmailRequest represents the request body for requesting a code.
// The address format is checked by the flow so its message reaches the form.
type SubmitEmailRequest struct {
	Email string `json:"email"`
}

// SubmitCodeRequest represents the request body for verifying a code
type SubmitCodeRequest struct {
	Code string `json:"code"`
}

// SignedInResponse is returned once the code is accepted.
type SignedInResponse struct {
	Auth    presenter.AuthStateView `json:"auth"`
	Session presenter.SessionView   `json:"session"`
}

func (h *AuthHandler) State(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.AuthState(h.sessions.AuthFlow(id).State()))
}

func (h *AuthHandler) SubmitEmail(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubmitEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.sessions.AuthFlow(id).SubmitEmail(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.AuthState(state))
}

func (h *AuthHandler) SubmitCode(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubmitCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	state, err := h.sessions.AuthFlow(id).SubmitCode(ctx, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.sessions.Status(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SignedInResponse{
		Auth:    presenter.AuthState(state),
		Session: presenter.Session(status),
	})
}

func (h *AuthHandler) Back(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.AuthState(h.sessions.AuthFlow(id).Back()))
}
