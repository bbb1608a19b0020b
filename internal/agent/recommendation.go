package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/skinwise/skinwise/internal/adapter/llm"
	"github.com/skinwise/skinwise/internal/domain"
)

// maxAlternatives bounds every alternatives list, on any path.
const maxAlternatives = 3

// RecommendationAgent suggests alternative products and builds complete
// skincare routines.
type RecommendationAgent struct {
	gen llm.Generator
}

// NewRecommendationAgent creates a recommendation agent over the given
// generator.
func NewRecommendationAgent(gen llm.Generator) *RecommendationAgent {
	return &RecommendationAgent{gen: gen}
}

// FindAlternatives suggests up to 3 replacement products. Fallback: an
// empty list.
func (a *RecommendationAgent) FindAlternatives(ctx context.Context, product domain.Product, profile domain.UserProfile, reason domain.AlternativesReason) []domain.AlternativeProduct {
	productJSON, err := json.Marshal(product)
	if err != nil {
		return []domain.AlternativeProduct{}
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return []domain.AlternativeProduct{}
	}

	user := fmt.Sprintf("Current product: %s\n\nUser profile: %s\n\nReason for alternatives: %s\n\nFind 3 better alternatives.",
		productJSON, profileJSON, reason)

	raw, err := a.gen.Generate(ctx, alternativesPrompt, user, 2000, 0.5)
	if err != nil {
		log.Printf("WARN: alternatives generation failed: %v", err)
		return []domain.AlternativeProduct{}
	}

	var alternatives []domain.AlternativeProduct
	if err := parseJSON(raw, &alternatives); err != nil {
		log.Printf("WARN: alternatives parse failed: %v", err)
		return []domain.AlternativeProduct{}
	}
	if alternatives == nil {
		alternatives = []domain.AlternativeProduct{}
	}
	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}
	for i := range alternatives {
		alternatives[i].MatchScore = clampScore(alternatives[i].MatchScore)
	}

	return alternatives
}

// BuildRoutine generates a complete routine for the profile and budget.
// On failure the returned Routine carries a non-empty Error tag; callers
// must check it and must not treat the result as a valid empty routine.
func (a *RecommendationAgent) BuildRoutine(ctx context.Context, profile domain.UserProfile, budget domain.Budget) domain.Routine {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return errorRoutine(err)
	}

	user := fmt.Sprintf("User profile: %s\n\nBudget: %s\n\nCreate a complete routine.", profileJSON, budget)

	raw, err := a.gen.Generate(ctx, routinePrompt, user, 3000, 0.4)
	if err != nil {
		log.Printf("WARN: routine generation failed: %v", err)
		return errorRoutine(err)
	}

	var routine domain.Routine
	if err := parseJSON(raw, &routine); err != nil {
		log.Printf("WARN: routine parse failed: %v", err)
		return errorRoutine(err)
	}

	// A parsed routine is authoritative; never carry over a model-written
	// error field.
	routine.Error = ""

	return routine
}

func errorRoutine(err error) domain.Routine {
	return domain.Routine{Error: fmt.Sprintf("routine generation failed: %v", err)}
}
