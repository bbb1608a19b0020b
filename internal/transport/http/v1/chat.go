package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skinwise/skinwise/internal/repository"
)

// ChatRequest is the body for the chat endpoint.
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// Chat routes a natural-language message through the orchestrator.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.UserID == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id and message are required"})
	}

	ctx := c.Request().Context()

	result, err := h.service.Chat(ctx, req.UserID, req.Message)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"response":   result.Response,
		"agent_used": result.AgentUsed,
		"confidence": result.Confidence,
	})
}
