package agent

import (
	"fmt"
	"strings"

	"github.com/skinwise/skinwise/internal/domain"
)

// Rule-based product scoring, used when the generative path fails. It
// operates purely on case-normalized substring containment over the
// ingredient list and the user's profile, so it stays deterministic and
// independently testable.

const fallbackBaseScore = 70

// skinTypeRule maps an ingredient match to a note and a score delta for
// one skin type.
type skinTypeRule struct {
	skinType domain.SkinType
	needles  []string
	note     string
	delta    int
	benefit  bool
}

var skinTypeRules = []skinTypeRule{
	{
		skinType: domain.SkinTypeDry,
		needles:  []string{"alcohol", "alcohol denat"},
		note:     "Contains alcohol - drying for your skin",
		delta:    -20,
	},
	{
		skinType: domain.SkinTypeDry,
		needles:  []string{"hyaluronic acid"},
		note:     "Hyaluronic acid - great for hydration",
		delta:    10,
		benefit:  true,
	},
	{
		skinType: domain.SkinTypeSensitive,
		needles:  []string{"fragrance", "parfum"},
		note:     "Contains fragrance - may irritate",
		delta:    -15,
	},
}

// fallbackAnalysis scores a product without the generative model. The
// result is intentionally coarser than the generative path: no per
// ingredient analyses, interactions, or usage tips.
func fallbackAnalysis(product domain.Product, profile domain.UserProfile) domain.ProductAnalysis {
	ingredients := normalizeIngredients(product.Ingredients)

	score := fallbackBaseScore
	warnings := []string{}
	benefits := []string{}

	for _, allergy := range profile.Allergies {
		if containsIngredient(ingredients, strings.ToLower(allergy)) {
			warnings = append(warnings, fmt.Sprintf("Contains %s - listed in your allergies", strings.ToLower(allergy)))
			score -= 30
		}
	}

	for _, rule := range skinTypeRules {
		if rule.skinType != profile.SkinType {
			continue
		}
		if !containsAnyIngredient(ingredients, rule.needles) {
			continue
		}
		if rule.benefit {
			benefits = append(benefits, rule.note)
		} else {
			warnings = append(warnings, rule.note)
		}
		score += rule.delta
	}

	score = clampScore(score)

	return domain.ProductAnalysis{
		OverallScore:       score,
		Recommendation:     scoreToRecommendation(score),
		Summary:            fmt.Sprintf("Rule-based assessment: %d/100", score),
		IngredientAnalyses: []domain.IngredientAnalysis{},
		Warnings:           warnings,
		Benefits:           benefits,
		Interactions:       []string{},
		UsageTips:          []string{},
	}
}

// scoreToRecommendation maps a clamped score to the overall verdict.
func scoreToRecommendation(score int) domain.Recommendation {
	switch {
	case score >= 70:
		return domain.RecommendationRecommended
	case score >= 50:
		return domain.RecommendationCaution
	default:
		return domain.RecommendationNotRecommended
	}
}

func normalizeIngredients(ingredients []string) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, strings.ToLower(strings.TrimSpace(ing)))
	}
	return out
}

func containsIngredient(ingredients []string, needle string) bool {
	for _, ing := range ingredients {
		if strings.Contains(ing, needle) {
			return true
		}
	}
	return false
}

func containsAnyIngredient(ingredients []string, needles []string) bool {
	for _, needle := range needles {
		if containsIngredient(ingredients, needle) {
			return true
		}
	}
	return false
}
