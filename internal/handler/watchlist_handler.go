package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "wolfstreet/internal/errors"
	"wolfstreet/internal/middleware"
	"wolfstreet/internal/model"
	"wolfstreet/internal/service"
)

// WatchlistHandler handles watchlist endpoints.
type WatchlistHandler struct {
	watchlistService service.WatchlistService
}

// NewWatchlistHandler creates a new watchlist handler.
func NewWatchlistHandler(watchlistService service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

// WatchlistCreateRequest represents an add-to-watchlist request.
type WatchlistCreateRequest struct {
	Symbol string  `json:"symbol" validate:"required"`
	Note   *string `json:"note"`
}

// WatchlistItemView is the client view of a watchlist row.
type WatchlistItemView struct {
	ID     uuid.UUID `json:"id"`
	Symbol string    `json:"symbol"`
	Note   *string   `json:"note"`
}

func itemView(item model.WatchlistItem) WatchlistItemView {
	return WatchlistItemView{ID: item.ID, Symbol: item.Symbol, Note: item.Note}
}

// List godoc
// @Summary List the caller's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WatchlistItemView
// @Failure 401 {object} errors.ErrorResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) List(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	items, err := h.watchlistService.List(c.Request().Context(), principal.User.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list watchlist")
	}

	views := make([]WatchlistItemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView(item))
	}
	return c.JSON(http.StatusOK, views)
}

// Add godoc
// @Summary Add a symbol to the caller's watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WatchlistCreateRequest true "Symbol to track"
// @Success 200 {object} WatchlistItemView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /watchlist [post]
func (h *WatchlistHandler) Add(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req WatchlistCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.watchlistService.Add(c.Request().Context(), principal.User.ID, req.Symbol, req.Note)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to add watchlist item")
	}
	return c.JSON(http.StatusOK, itemView(*item))
}

// Remove godoc
// @Summary Remove a watchlist item
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /watchlist/{id} [delete]
func (h *WatchlistHandler) Remove(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id can never name an existing row.
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrWatchlistItemNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.watchlistService.Remove(c.Request().Context(), principal.User.ID, itemID); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
