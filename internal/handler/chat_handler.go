package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wolfstreet/internal/middleware"
	"wolfstreet/internal/service"
)

// ChatHandler handles the rule-based chat endpoint.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents a chat message from the user.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse carries the assistant reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Send godoc
// @Summary Send a chat message and get the copilot reply
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "Message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Send(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.chatService.Send(c.Request().Context(), principal.User.ID, req.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process message")
	}
	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
