package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/skinwise/skinwise/internal/adapter/llm"
	"github.com/skinwise/skinwise/internal/domain"
)

func TestAnalyzeProduct(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse(`{
		"overall_score": 82,
		"recommendation": "recommended",
		"summary": "Good fit for oily skin.",
		"ingredient_analyses": [{"ingredient": "Niacinamide", "suitability_score": 90}],
		"warnings": [],
		"benefits": ["Regulates sebum"],
		"interactions": [],
		"usage_tips": ["Apply at night"]
	}`)
	agent := NewAnalysisAgent(mock)

	analysis := agent.AnalyzeProduct(context.Background(),
		domain.Product{Name: "Serum", Ingredients: []string{"Niacinamide"}},
		domain.UserProfile{SkinType: domain.SkinTypeOily})

	if analysis.OverallScore != 82 {
		t.Fatalf("unexpected score: %d", analysis.OverallScore)
	}
	if analysis.Recommendation != domain.RecommendationRecommended {
		t.Fatalf("unexpected recommendation: %s", analysis.Recommendation)
	}
	if call := mock.Calls[0]; call.MaxTokens != 3000 || call.Temperature != 0.2 {
		t.Fatalf("unexpected generation parameters: %+v", call)
	}
}

func TestAnalyzeProductNormalizesOutOfRange(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse(`{
		"overall_score": 150,
		"recommendation": "buy it now",
		"ingredient_analyses": [{"ingredient": "Retinol", "suitability_score": -5}]
	}`)
	agent := NewAnalysisAgent(mock)

	analysis := agent.AnalyzeProduct(context.Background(), domain.Product{}, domain.UserProfile{})

	if analysis.OverallScore != 100 {
		t.Fatalf("expected score clamped to 100, got %d", analysis.OverallScore)
	}
	if analysis.Recommendation != domain.RecommendationRecommended {
		t.Fatalf("expected verdict rederived from clamped score, got %s", analysis.Recommendation)
	}
	if analysis.IngredientAnalyses[0].SuitabilityScore != 0 {
		t.Fatalf("expected ingredient score clamped to 0, got %d", analysis.IngredientAnalyses[0].SuitabilityScore)
	}
	if analysis.Warnings == nil || analysis.UsageTips == nil {
		t.Fatalf("expected non-nil slices: %+v", analysis)
	}
}

func TestAnalyzeProductFallsBackToRules(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetError(errors.New("api unavailable"))
	agent := NewAnalysisAgent(mock)

	analysis := agent.AnalyzeProduct(context.Background(),
		domain.Product{Name: "Toner", Ingredients: []string{"Alcohol"}},
		domain.UserProfile{SkinType: domain.SkinTypeDry})

	if analysis.OverallScore != 50 {
		t.Fatalf("expected rule-based score 50, got %d", analysis.OverallScore)
	}
	if analysis.Recommendation != domain.RecommendationCaution {
		t.Fatalf("expected caution, got %s", analysis.Recommendation)
	}
}

func TestCheckInteractions(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse(`["Retinol + AHA can over-exfoliate"]`)
	agent := NewAnalysisAgent(mock)

	warnings := agent.CheckInteractions(context.Background(), []string{"Retinol", "Glycolic Acid"})

	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if call := mock.Calls[0]; call.MaxTokens != 500 || call.Temperature != 0.1 {
		t.Fatalf("unexpected generation parameters: %+v", call)
	}
}

func TestCheckInteractionsFallbackIsEmpty(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetError(errors.New("timeout"))
	agent := NewAnalysisAgent(mock)

	warnings := agent.CheckInteractions(context.Background(), []string{"Retinol"})
	if warnings == nil || len(warnings) != 0 {
		t.Fatalf("expected empty non-nil warnings, got %v", warnings)
	}

	// Same inputs, same result.
	again := agent.CheckInteractions(context.Background(), []string{"Retinol"})
	if len(again) != 0 {
		t.Fatalf("expected fallback to stay empty, got %v", again)
	}
}

func TestCheckInteractionsNullReply(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse(`null`)
	agent := NewAnalysisAgent(mock)

	warnings := agent.CheckInteractions(context.Background(), []string{"Water"})
	if warnings == nil || len(warnings) != 0 {
		t.Fatalf("expected empty non-nil warnings, got %v", warnings)
	}
}
