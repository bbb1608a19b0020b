package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skinwise/skinwise/internal/repository"
)

// ScanRequest is the body for the product scan endpoint.
type ScanRequest struct {
	UserID  string `json:"user_id"`
	Barcode string `json:"barcode"`
}

// ScanProduct analyzes a scanned product for the user.
// POST /api/products/scan
func (h *Handler) ScanProduct(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.UserID == "" || req.Barcode == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id and barcode are required"})
	}

	ctx := c.Request().Context()

	result, err := h.service.ScanProduct(ctx, req.UserID, req.Barcode)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}
