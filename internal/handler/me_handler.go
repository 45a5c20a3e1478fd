package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wolfstreet/internal/middleware"
	"wolfstreet/internal/model"
)

// MeHandler serves the authenticated user's own profile.
type MeHandler struct{}

// NewMeHandler creates a new me handler.
func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// MeResponse is the profile view of the calling user.
type MeResponse struct {
	ID    uuid.UUID  `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Plan  model.Plan `json:"plan"`
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *MeHandler) Me(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	u := principal.User
	return c.JSON(http.StatusOK, MeResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Plan:  u.Plan,
	})
}
