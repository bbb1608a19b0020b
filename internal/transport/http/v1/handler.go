// Package v1 provides HTTP handlers for the skincare API.
package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/skinwise/skinwise/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	e.POST("/api/users/create-from-description", h.CreateUserFromDescription)
	e.GET("/api/users/:user_id", h.GetUser)

	e.POST("/api/chat", h.Chat)
	e.POST("/api/products/scan", h.ScanProduct)
	e.POST("/api/routine/generate", h.GenerateRoutine)
	e.POST("/api/feedback", h.SubmitFeedback)
}

// Root returns the service banner.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "SkinWise API",
		"status":  "running",
		"version": "1.0.0",
	})
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
