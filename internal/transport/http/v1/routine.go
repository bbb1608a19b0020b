package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skinwise/skinwise/internal/domain"
	"github.com/skinwise/skinwise/internal/repository"
)

// GenerateRoutine builds a personalized routine.
// POST /api/routine/generate?user_id=...&budget=...
func (h *Handler) GenerateRoutine(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}

	budget := domain.Budget(c.QueryParam("budget"))
	switch budget {
	case domain.BudgetLow, domain.BudgetMid, domain.BudgetPremium:
	case "":
		budget = domain.BudgetMid
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "budget must be one of: budget, mid-range, premium"})
	}

	ctx := c.Request().Context()

	routine, err := h.service.GenerateRoutine(ctx, userID, budget)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	// An error-tagged routine is a failed generation, not an empty routine.
	if routine.Error != "" {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": routine.Error})
	}

	return c.JSON(http.StatusOK, routine)
}
