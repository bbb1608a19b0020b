// Package domain defines the core domain models for the skincare service.
package domain

// SkinType classifies a user's skin.
type SkinType string

const (
	SkinTypeOily        SkinType = "oily"
	SkinTypeDry         SkinType = "dry"
	SkinTypeCombination SkinType = "combination"
	SkinTypeSensitive   SkinType = "sensitive"
	SkinTypeNormal      SkinType = "normal"
)

// AgentKind identifies which task agent handles a request.
type AgentKind string

const (
	AgentProfile        AgentKind = "PROFILE"
	AgentAnalysis       AgentKind = "ANALYSIS"
	AgentRecommendation AgentKind = "RECOMMENDATION"
	AgentChat           AgentKind = "CHAT"
)

// Recommendation is the overall verdict for a product analysis.
type Recommendation string

const (
	RecommendationRecommended    Recommendation = "recommended"
	RecommendationCaution        Recommendation = "caution"
	RecommendationNotRecommended Recommendation = "not_recommended"
)

// Budget is the price tier for routine building.
type Budget string

const (
	BudgetLow     Budget = "budget"
	BudgetMid     Budget = "mid-range"
	BudgetPremium Budget = "premium"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// AlternativesReason explains why alternatives are being requested.
type AlternativesReason string

const (
	ReasonBetterMatch AlternativesReason = "better_match"
	ReasonAllergy     AlternativesReason = "allergy"
	ReasonBudget      AlternativesReason = "budget"
)
