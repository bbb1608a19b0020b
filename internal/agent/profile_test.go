package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/skinwise/skinwise/internal/adapter/llm"
	"github.com/skinwise/skinwise/internal/domain"
)

func TestAnalyzeDescription(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse("```json\n{\"skin_type\": \"dry\", \"concerns\": [\"redness\"], \"confidence\": 0.9, \"follow_up_questions\": [\"Does it flake?\"]}\n```")
	agent := NewProfileAgent(mock)

	extraction := agent.AnalyzeDescription(context.Background(), "my skin feels tight and flaky")

	if extraction.SkinType != domain.SkinTypeDry {
		t.Fatalf("expected dry, got %s", extraction.SkinType)
	}
	if len(extraction.Concerns) != 1 || extraction.Concerns[0] != "redness" {
		t.Fatalf("unexpected concerns: %v", extraction.Concerns)
	}
	if extraction.Confidence != 0.9 {
		t.Fatalf("unexpected confidence: %v", extraction.Confidence)
	}
	if call := mock.Calls[0]; call.MaxTokens != 2000 || call.Temperature != 0.3 {
		t.Fatalf("unexpected generation parameters: %+v", call)
	}
}

func TestAnalyzeDescriptionGenerationFailure(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetError(errors.New("api unavailable"))
	agent := NewProfileAgent(mock)

	extraction := agent.AnalyzeDescription(context.Background(), "oily t-zone")

	if extraction.SkinType != domain.SkinTypeNormal {
		t.Fatalf("expected normal fallback, got %s", extraction.SkinType)
	}
	if extraction.Confidence != 0 {
		t.Fatalf("expected confidence 0, got %v", extraction.Confidence)
	}
	if extraction.Concerns == nil {
		t.Fatalf("expected non-nil concerns")
	}
}

func TestAnalyzeDescriptionParseFailure(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse("I think your skin is dry.")
	agent := NewProfileAgent(mock)

	extraction := agent.AnalyzeDescription(context.Background(), "dry skin")

	if extraction.SkinType != domain.SkinTypeNormal || extraction.Confidence != 0 {
		t.Fatalf("expected fallback extraction, got %+v", extraction)
	}
}

func TestAnalyzeDescriptionInvalidSkinType(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse(`{"skin_type": "glassy", "concerns": [], "confidence": 1.7}`)
	agent := NewProfileAgent(mock)

	extraction := agent.AnalyzeDescription(context.Background(), "shiny skin")

	if extraction.SkinType != domain.SkinTypeNormal {
		t.Fatalf("expected unknown skin type replaced with normal, got %s", extraction.SkinType)
	}
	if extraction.Confidence != 1 {
		t.Fatalf("expected confidence clamped to 1, got %v", extraction.Confidence)
	}
	if len(extraction.FollowUpQuestions) == 0 {
		t.Fatalf("expected a default follow-up question")
	}
}

func TestGenerateQuestions(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetResponse(`["Q1?", "Q2?", "Q3?", "Q4?"]`)
	agent := NewProfileAgent(mock)

	questions := agent.GenerateQuestions(context.Background(), domain.UserProfile{SkinType: domain.SkinTypeOily})

	if len(questions) != 3 {
		t.Fatalf("expected questions truncated to 3, got %d", len(questions))
	}
	if questions[0] != "Q1?" {
		t.Fatalf("unexpected first question: %s", questions[0])
	}
	if call := mock.Calls[0]; call.MaxTokens != 500 || call.Temperature != 0.7 {
		t.Fatalf("unexpected generation parameters: %+v", call)
	}
}

func TestGenerateQuestionsFallback(t *testing.T) {
	mock := llm.NewMockClient()
	mock.SetError(errors.New("timeout"))
	agent := NewProfileAgent(mock)

	questions := agent.GenerateQuestions(context.Background(), domain.UserProfile{})

	if len(questions) != 3 {
		t.Fatalf("expected generic fallback questions, got %v", questions)
	}
	if questions[0] != genericQuestions[0] {
		t.Fatalf("expected generic question set, got %v", questions)
	}
}
