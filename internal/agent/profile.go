// Package agent implements the task agents and the request router. Each
// agent pairs a prompt template with an output schema and a deterministic
// fallback; generation and parse failures never escape to callers.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/skinwise/skinwise/internal/adapter/llm"
	"github.com/skinwise/skinwise/internal/domain"
)

// ProfileAgent extracts structured skin profiles from free-form text and
// produces contextual follow-up questions.
type ProfileAgent struct {
	gen llm.Generator
}

// NewProfileAgent creates a profile agent over the given generator.
func NewProfileAgent(gen llm.Generator) *ProfileAgent {
	return &ProfileAgent{gen: gen}
}

var genericQuestions = []string{
	"How does your skin feel by midday?",
	"Do you have any specific product preferences?",
	"What's your main skin goal right now?",
}

// AnalyzeDescription extracts a structured profile from a natural-language
// skin description. On failure it returns a minimal extraction with
// confidence 0.0, which callers must treat as "extraction unavailable".
func (a *ProfileAgent) AnalyzeDescription(ctx context.Context, description string) domain.ProfileExtraction {
	user := fmt.Sprintf("User describes their skin: %s", description)

	raw, err := a.gen.Generate(ctx, profileExtractionPrompt, user, 2000, 0.3)
	if err != nil {
		log.Printf("WARN: profile extraction generation failed: %v", err)
		return emptyExtraction()
	}

	var extraction domain.ProfileExtraction
	if err := parseJSON(raw, &extraction); err != nil {
		log.Printf("WARN: profile extraction parse failed: %v", err)
		return emptyExtraction()
	}

	if !validSkinType(extraction.SkinType) {
		extraction.SkinType = domain.SkinTypeNormal
	}
	if extraction.Concerns == nil {
		extraction.Concerns = []string{}
	}
	extraction.Confidence = clampFraction(extraction.Confidence)
	if len(extraction.FollowUpQuestions) == 0 {
		extraction.FollowUpQuestions = []string{genericQuestions[0]}
	}

	return extraction
}

// GenerateQuestions produces 3 follow-up questions for the given profile.
// Fallback: a fixed generic set.
func (a *ProfileAgent) GenerateQuestions(ctx context.Context, profile domain.UserProfile) []string {
	payload, err := json.Marshal(profile)
	if err != nil {
		return genericQuestions
	}

	raw, err := a.gen.Generate(ctx, followUpQuestionsPrompt, fmt.Sprintf("Current profile: %s", payload), 500, 0.7)
	if err != nil {
		log.Printf("WARN: question generation failed: %v", err)
		return genericQuestions
	}

	var questions []string
	if err := parseJSON(raw, &questions); err != nil {
		log.Printf("WARN: question parse failed: %v", err)
		return genericQuestions
	}
	if len(questions) == 0 {
		return genericQuestions
	}
	if len(questions) > 3 {
		questions = questions[:3]
	}

	return questions
}

func emptyExtraction() domain.ProfileExtraction {
	return domain.ProfileExtraction{
		SkinType:          domain.SkinTypeNormal,
		Concerns:          []string{},
		Confidence:        0.0,
		FollowUpQuestions: []string{},
	}
}

func validSkinType(st domain.SkinType) bool {
	switch st {
	case domain.SkinTypeOily, domain.SkinTypeDry, domain.SkinTypeCombination,
		domain.SkinTypeSensitive, domain.SkinTypeNormal:
		return true
	}
	return false
}
