package handler

import (
	"net/http"

	"walletportal/internal/delivery/api/response"
	"walletportal/internal/delivery/presenter"
	"walletportal/internal/domain/entity"
	"walletportal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UsersHandler serves the paginated user directory.
type UsersHandler struct {
	sessions usecase.SessionUsecase
}

// NewUsersHandler is the constructor for UsersHandler
func NewUsersHandler(sessions usecase.SessionUsecase) *UsersHandler {
	return &UsersHandler{sessions: sessions}
}

// SearchRequest represents the request body for a single-user lookup
type SearchRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// List enters list mode and loads the first page.
func (h *UsersHandler) List(c echo.Context) error {
	return h.run(c, func(d usecase.UserDirectoryUsecase) (entity.DirectoryState, error) {
		return d.Activate(c.Request().Context())
	})
}

func (h *UsersHandler) Refresh(c echo.Context) error {
	return h.run(c, func(d usecase.UserDirectoryUsecase) (entity.DirectoryState, error) {
		return d.Refresh(c.Request().Context())
	})
}

func (h *UsersHandler) LoadMore(c echo.Context) error {
	return h.run(c, func(d usecase.UserDirectoryUsecase) (entity.DirectoryState, error) {
		return d.LoadMore(c.Request().Context())
	})
}

func (h *UsersHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.run(c, func(d usecase.UserDirectoryUsecase) (entity.DirectoryState, error) {
		return d.Search(c.Request().Context(), entity.UserQueryField(req.Field), req.Value)
	})
}

// State returns the held directory without fetching.
func (h *UsersHandler) State(c echo.Context) error {
	return h.run(c, func(d usecase.UserDirectoryUsecase) (entity.DirectoryState, error) {
		return d.State(), nil
	})
}

func (h *UsersHandler) run(c echo.Context, action func(usecase.UserDirectoryUsecase) (entity.DirectoryState, error)) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := action(h.sessions.UserDirectory(id))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presenter.Directory(state))
}
