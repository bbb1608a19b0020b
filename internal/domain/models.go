package domain

import (
	"encoding/json"
	"time"
)

// UserProfile is the durable profile owned by the persistence layer.
// Agents receive it by value and never mutate it.
type UserProfile struct {
	UserID            string          `json:"user_id"`
	Name              string          `json:"name,omitempty"`
	Age               int             `json:"age,omitempty"`
	SkinType          SkinType        `json:"skin_type"`
	Concerns          []string        `json:"concerns"`
	Allergies         []string        `json:"allergies"`
	Climate           string          `json:"climate,omitempty"`
	Lifestyle         json.RawMessage `json:"lifestyle,omitempty"`
	MedicalConditions []string        `json:"medical_conditions,omitempty"`
	CreatedAt         time.Time       `json:"created_at,omitempty"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

// ProfileExtraction is the structured result of analyzing a free-text
// skin description. Confidence 0.0 means extraction was unavailable,
// not that the user has a blank profile.
type ProfileExtraction struct {
	SkinType          SkinType          `json:"skin_type"`
	Concerns          []string          `json:"concerns"`
	Severity          map[string]string `json:"severity,omitempty"`
	Triggers          []string          `json:"triggers,omitempty"`
	CurrentRoutine    []string          `json:"current_routine,omitempty"`
	Goals             []string          `json:"goals,omitempty"`
	Confidence        float64           `json:"confidence"`
	FollowUpQuestions []string          `json:"follow_up_questions"`
}

// ConversationTurn is one message in a user's conversation history.
type ConversationTurn struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	Message   string    `json:"message"`
	AgentUsed AgentKind `json:"agent_used,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RoutingDecision is the router's classification of an incoming message.
// It lives for a single request.
type RoutingDecision struct {
	Agent      AgentKind       `json:"agent"`
	Action     string          `json:"action"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
	Confidence float64         `json:"confidence"`
	Reasoning  string          `json:"reasoning,omitempty"`
}

// RouteResult is the uniform envelope returned for every routed request.
type RouteResult struct {
	AgentUsed  AgentKind `json:"agent_used"`
	Response   string    `json:"response"`
	Confidence float64   `json:"confidence"`
}

// Product is a scanned or stored cosmetic product.
type Product struct {
	ProductID   string    `json:"product_id"`
	Barcode     string    `json:"barcode"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Ingredients []string  `json:"ingredients"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// IngredientAnalysis scores a single ingredient for one user.
type IngredientAnalysis struct {
	Ingredient       string   `json:"ingredient"`
	Category         string   `json:"category"`
	Benefits         []string `json:"benefits"`
	Risks            []string `json:"risks"`
	SuitabilityScore int      `json:"suitability_score"`
	EvidenceLevel    string   `json:"evidence_level"`
	Explanation      string   `json:"explanation"`
}

// ProductAnalysis is the full assessment of a product for one user.
// Scores are integers in [0,100].
type ProductAnalysis struct {
	OverallScore       int                  `json:"overall_score"`
	Recommendation     Recommendation       `json:"recommendation"`
	Summary            string               `json:"summary"`
	IngredientAnalyses []IngredientAnalysis `json:"ingredient_analyses"`
	Warnings           []string             `json:"warnings"`
	Benefits           []string             `json:"benefits"`
	Interactions       []string             `json:"interactions"`
	UsageTips          []string             `json:"usage_tips"`
}

// RoutineStep is one ordered step in a skincare routine.
type RoutineStep struct {
	Step           int    `json:"step"`
	ProductType    string `json:"product_type"`
	Recommendation string `json:"recommendation"`
	Why            string `json:"why"`
	Price          string `json:"price"`
}

// Routine is a complete personalized routine. A non-empty Error means
// generation failed and the rest of the struct must not be used.
type Routine struct {
	Morning          []RoutineStep `json:"morning"`
	Night            []RoutineStep `json:"night"`
	Weekly           []RoutineStep `json:"weekly"`
	TotalMonthlyCost string        `json:"total_monthly_cost"`
	ExpectedResults  string        `json:"expected_results"`
	Tips             []string      `json:"tips,omitempty"`
	Error            string        `json:"error,omitempty"`
}

// AlternativeProduct is a suggested replacement product.
type AlternativeProduct struct {
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	WhyBetter  string `json:"why_better"`
	PriceRange string `json:"price_range"`
	MatchScore int    `json:"match_score"`
	WhereToBuy string `json:"where_to_buy"`
}

// Feedback is a user's report on how a product worked out.
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Outcome   string    `json:"outcome,omitempty"`
	Rating    int       `json:"rating"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
