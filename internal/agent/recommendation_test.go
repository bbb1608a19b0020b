package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/skinwise/skinwise/internal/adapter/llm"
	"github.com/skinwise/skinwise/internal/domain"
)

func TestFindAlternatives(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse(`[
		{"name": "A", "brand": "B1", "match_score": 90},
		{"name": "B", "brand": "B2", "match_score": 120},
		{"name": "C", "brand": "B3", "match_score": 80},
		{"name": "D", "brand": "B4", "match_score": 70}
	]`)
	agent := NewRecommendationAgent(mock)

	alternatives := agent.FindAlternatives(context.Background(),
		domain.Product{Name: "Old"}, domain.UserProfile{}, domain.ReasonBetterMatch)

	if len(alternatives) != 3 {
		t.Fatalf("expected alternatives truncated to 3, got %d", len(alternatives))
	}
	if alternatives[1].MatchScore != 100 {
		t.Fatalf("expected match score clamped to 100, got %d", alternatives[1].MatchScore)
	}
	if call := mock.Calls[0]; call.MaxTokens != 2000 || call.Temperature != 0.5 {
		t.Fatalf("unexpected generation parameters: %+v", call)
	}
}

func TestFindAlternativesFallbackIsEmpty(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetError(errors.New("api unavailable"))
	agent := NewRecommendationAgent(mock)

	alternatives := agent.FindAlternatives(context.Background(),
		domain.Product{}, domain.UserProfile{}, domain.ReasonAllergy)

	if alternatives == nil || len(alternatives) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", alternatives)
	}
}

func TestBuildRoutine(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse(`{
		"morning": [{"step": 1, "product_type": "cleanser"}],
		"night": [{"step": 1, "product_type": "cleanser"}, {"step": 2, "product_type": "retinol"}],
		"weekly": [],
		"total_monthly_cost": "$60",
		"expected_results": "Smoother texture in 4-6 weeks",
		"error": "model should not set this"
	}`)
	agent := NewRecommendationAgent(mock)

	routine := agent.BuildRoutine(context.Background(),
		domain.UserProfile{SkinType: domain.SkinTypeCombination}, domain.BudgetMid)

	if routine.Error != "" {
		t.Fatalf("expected model-written error cleared, got %q", routine.Error)
	}
	if len(routine.Morning) != 1 || len(routine.Night) != 2 {
		t.Fatalf("unexpected routine shape: %+v", routine)
	}
	if call := mock.Calls[0]; call.MaxTokens != 3000 || call.Temperature != 0.4 {
		t.Fatalf("unexpected generation parameters: %+v", call)
	}
	if !strings.Contains(mock.Calls[0].User, string(domain.BudgetMid)) {
		t.Fatalf("expected budget in prompt: %s", mock.Calls[0].User)
	}
}

func TestBuildRoutineFailureCarriesErrorTag(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetError(errors.New("api unavailable"))
	agent := NewRecommendationAgent(mock)

	routine := agent.BuildRoutine(context.Background(), domain.UserProfile{}, domain.BudgetPremium)

	if routine.Error == "" {
		t.Fatalf("expected error tag on failed generation")
	}
	if !strings.Contains(routine.Error, "routine generation failed") {
		t.Fatalf("unexpected error tag: %q", routine.Error)
	}
}

func TestBuildRoutineParseFailureCarriesErrorTag(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse("Here is a great routine for you!")
	agent := NewRecommendationAgent(mock)

	routine := agent.BuildRoutine(context.Background(), domain.UserProfile{}, domain.BudgetLow)

	if routine.Error == "" {
		t.Fatalf("expected error tag on unparseable reply")
	}
}

func TestChatReply(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse("Sunscreen every morning, rain or shine.")
	agent := NewChatAgent(mock)

	reply := agent.Reply(context.Background(), "do I need SPF indoors?", domain.UserProfile{})

	if reply != "Sunscreen every morning, rain or shine." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if call := mock.Calls[0]; call.MaxTokens != 500 || call.Temperature != 0.7 {
		t.Fatalf("unexpected generation parameters: %+v", call)
	}
}

func TestChatReplyFallback(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetError(errors.New("api unavailable"))
	agent := NewChatAgent(mock)

	reply := agent.Reply(context.Background(), "hello", domain.UserProfile{})

	if reply != chatFallbackReply {
		t.Fatalf("unexpected fallback reply: %q", reply)
	}
}
