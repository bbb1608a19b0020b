package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skinwise/skinwise/internal/domain"
)

// FeedbackRequest is the body for the feedback endpoint.
type FeedbackRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Outcome   string `json:"outcome"`
	Notes     string `json:"notes"`
}

// SubmitFeedback stores product feedback from a user.
// POST /api/feedback
func (h *Handler) SubmitFeedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.UserID == "" || req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id and product_id are required"})
	}

	ctx := c.Request().Context()

	points, err := h.service.SubmitFeedback(ctx, domain.Feedback{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Outcome:   req.Outcome,
		Notes:     req.Notes,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Thank you for your feedback!",
		"points_earned": points,
	})
}
