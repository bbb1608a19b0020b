package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/skinwise/skinwise/internal/adapter/llm"
	"github.com/skinwise/skinwise/internal/domain"
)

// AnalysisAgent scores products for a specific user and checks ingredient
// combinations against a fixed reference set.
type AnalysisAgent struct {
	gen llm.Generator
}

// NewAnalysisAgent creates an analysis agent over the given generator.
func NewAnalysisAgent(gen llm.Generator) *AnalysisAgent {
	return &AnalysisAgent{gen: gen}
}

// AnalyzeProduct scores and explains a product for one user. When the
// generative path fails, the rule-based fallback produces a coarser but
// schema-identical result; both are valid instances of ProductAnalysis.
func (a *AnalysisAgent) AnalyzeProduct(ctx context.Context, product domain.Product, profile domain.UserProfile) domain.ProductAnalysis {
	productJSON, err := json.Marshal(product)
	if err != nil {
		return fallbackAnalysis(product, profile)
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fallbackAnalysis(product, profile)
	}

	user := fmt.Sprintf("Product: %s\n\nUser Profile: %s\n\nAnalyze this product for THIS specific user.", productJSON, profileJSON)

	raw, err := a.gen.Generate(ctx, productAnalysisPrompt, user, 3000, 0.2)
	if err != nil {
		log.Printf("WARN: product analysis generation failed: %v", err)
		return fallbackAnalysis(product, profile)
	}

	var analysis domain.ProductAnalysis
	if err := parseJSON(raw, &analysis); err != nil {
		log.Printf("WARN: product analysis parse failed: %v", err)
		return fallbackAnalysis(product, profile)
	}

	return normalizeAnalysis(analysis)
}

// CheckInteractions flags known adverse ingredient combinations. The
// fallback is an empty list: never fabricate warnings.
func (a *AnalysisAgent) CheckInteractions(ctx context.Context, ingredients []string) []string {
	payload, err := json.Marshal(ingredients)
	if err != nil {
		return []string{}
	}

	raw, err := a.gen.Generate(ctx, interactionCheckPrompt, fmt.Sprintf("Ingredients: %s", payload), 500, 0.1)
	if err != nil {
		log.Printf("WARN: interaction check generation failed: %v", err)
		return []string{}
	}

	var warnings []string
	if err := parseJSON(raw, &warnings); err != nil {
		log.Printf("WARN: interaction check parse failed: %v", err)
		return []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}

	return warnings
}

// normalizeAnalysis clamps model-provided scores and fills in slices so
// callers never see nils or out-of-range values. An unrecognized verdict
// is rederived from the clamped score.
func normalizeAnalysis(analysis domain.ProductAnalysis) domain.ProductAnalysis {
	analysis.OverallScore = clampScore(analysis.OverallScore)

	switch analysis.Recommendation {
	case domain.RecommendationRecommended, domain.RecommendationCaution, domain.RecommendationNotRecommended:
	default:
		analysis.Recommendation = scoreToRecommendation(analysis.OverallScore)
	}

	for i := range analysis.IngredientAnalyses {
		analysis.IngredientAnalyses[i].SuitabilityScore = clampScore(analysis.IngredientAnalyses[i].SuitabilityScore)
	}

	if analysis.IngredientAnalyses == nil {
		analysis.IngredientAnalyses = []domain.IngredientAnalysis{}
	}
	if analysis.Warnings == nil {
		analysis.Warnings = []string{}
	}
	if analysis.Benefits == nil {
		analysis.Benefits = []string{}
	}
	if analysis.Interactions == nil {
		analysis.Interactions = []string{}
	}
	if analysis.UsageTips == nil {
		analysis.UsageTips = []string{}
	}

	return analysis
}
