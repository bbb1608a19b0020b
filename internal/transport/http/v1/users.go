package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skinwise/skinwise/internal/repository"
)

// CreateUserRequest is the body for create-from-description.
type CreateUserRequest struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Description string `json:"description"`
}

// CreateUserFromDescription creates a profile from a natural-language
// skin description.
// POST /api/users/create-from-description
func (h *Handler) CreateUserFromDescription(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Description == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "description is required"})
	}

	ctx := c.Request().Context()

	created, err := h.service.CreateUserFromDescription(ctx, req.Name, req.Age, req.Description)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user_id":             created.UserID,
		"profile":             created.Profile,
		"message":             "Profile created successfully!",
		"follow_up_questions": created.FollowUpQuestions,
	})
}

// GetUser retrieves a stored profile.
// GET /api/users/:user_id
func (h *Handler) GetUser(c echo.Context) error {
	userID := c.Param("user_id")

	ctx := c.Request().Context()

	user, err := h.service.GetUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, user)
}
