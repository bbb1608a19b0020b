package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skinwise/skinwise/internal/domain"
	"github.com/skinwise/skinwise/internal/repository"
)

// ScanResult is the full response for a barcode scan: the resolved
// product, its analysis, interaction warnings, and (when the product is
// not recommended) up to 3 alternatives.
type ScanResult struct {
	Product      domain.Product              `json:"product"`
	Analysis     domain.ProductAnalysis      `json:"analysis"`
	Interactions []string                    `json:"interactions"`
	Alternatives []domain.AlternativeProduct `json:"alternatives"`
}

// ScanProduct resolves a barcode and runs the scan pipeline:
// analyze, check interactions, and find alternatives when the verdict is
// anything other than "recommended".
func (s *Service) ScanProduct(ctx context.Context, userID, barcode string) (*ScanResult, error) {
	profile, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	product, err := s.store.GetProductByBarcode(ctx, barcode)
	if errors.Is(err, repository.ErrNotFound) {
		// Unknown barcode: stand-in product until a catalog lookup exists.
		product = demoProduct(barcode)
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	analysis := s.analysisAgent.AnalyzeProduct(ctx, *product, *profile)
	interactions := s.analysisAgent.CheckInteractions(ctx, product.Ingredients)

	alternatives := []domain.AlternativeProduct{}
	if analysis.Recommendation != domain.RecommendationRecommended {
		alternatives = s.recommendation.FindAlternatives(ctx, *product, *profile, domain.ReasonBetterMatch)
	}

	return &ScanResult{
		Product:      *product,
		Analysis:     analysis,
		Interactions: interactions,
		Alternatives: alternatives,
	}, nil
}

func demoProduct(barcode string) *domain.Product {
	return &domain.Product{
		ProductID: uuid.New().String(),
		Barcode:   barcode,
		Name:      "Hydrating Face Moisturizer",
		Brand:     "DemoLab",
		Category:  "moisturizer",
		Ingredients: []string{
			"Water", "Glycerin", "Hyaluronic Acid",
			"Niacinamide", "Ceramides", "Fragrance",
		},
		Description: "Daily hydrating moisturizer",
		Price:       24.99,
		CreatedAt:   time.Now(),
	}
}
