package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/skinwise/skinwise/internal/adapter/llm"
	"github.com/skinwise/skinwise/internal/domain"
	"github.com/skinwise/skinwise/policy"
)

// routingHistoryWindow is how many recent turns the classifier sees.
const routingHistoryWindow = 5

// defaultConfidence stands in when the classifier omits a confidence.
const defaultConfidence = 0.8

const (
	clarificationReply = "I'm here to help! Could you rephrase that?"
	guardrailReply     = "That's something best reviewed with a dermatologist or pharmacist - I can help with general skincare guidance instead."

	analysisGuidance       = "I can analyze a product for you - scan its barcode or share its ingredient list and I'll take a look."
	recommendationGuidance = "I can suggest products or build a full routine - tell me your budget (budget, mid-range, or premium) to get started."
)

// Router classifies an incoming message into an agent selection and
// dispatches to the matching task agent. It is stateless across
// requests; all state is the passed-in profile and history window.
type Router struct {
	gen            llm.Generator
	profileAgent   *ProfileAgent
	analysisAgent  *AnalysisAgent
	recommendation *RecommendationAgent
	chatAgent      *ChatAgent
	policyEngine   *policy.Engine
}

// NewRouter creates a router over the given generator and task agents.
// policyEngine may be nil to disable the dispatch guardrails.
func NewRouter(gen llm.Generator, profileAgent *ProfileAgent, analysisAgent *AnalysisAgent, recommendationAgent *RecommendationAgent, chatAgent *ChatAgent, policyEngine *policy.Engine) *Router {
	return &Router{
		gen:            gen,
		profileAgent:   profileAgent,
		analysisAgent:  analysisAgent,
		recommendation: recommendationAgent,
		chatAgent:      chatAgent,
		policyEngine:   policyEngine,
	}
}

// Route classifies the message and dispatches it. Routing failures
// degrade to a CHAT clarification; they never surface as errors.
func (r *Router) Route(ctx context.Context, message string, profile domain.UserProfile, history []domain.ConversationTurn) domain.RouteResult {
	decision, err := r.classify(ctx, message, profile, history)
	if err != nil {
		log.Printf("WARN: routing classification failed: %v", err)
		return domain.RouteResult{
			AgentUsed:  domain.AgentChat,
			Response:   clarificationReply,
			Confidence: 0.5,
		}
	}

	confidence := decision.Confidence
	if confidence == 0 {
		confidence = defaultConfidence
	}
	confidence = clampFraction(confidence)

	if r.guarded(ctx, decision, profile) {
		return domain.RouteResult{
			AgentUsed:  domain.AgentChat,
			Response:   guardrailReply,
			Confidence: confidence,
		}
	}

	response, agentUsed := r.dispatch(ctx, decision, message, profile)

	return domain.RouteResult{
		AgentUsed:  agentUsed,
		Response:   response,
		Confidence: confidence,
	}
}

// classify asks the model which agent should handle the message.
func (r *Router) classify(ctx context.Context, message string, profile domain.UserProfile, history []domain.ConversationTurn) (domain.RoutingDecision, error) {
	window := history
	if len(window) > routingHistoryWindow {
		window = window[len(window)-routingHistoryWindow:]
	}

	var convo strings.Builder
	for _, turn := range window {
		fmt.Fprintf(&convo, "%s: %s\n", turn.Role, turn.Message)
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return domain.RoutingDecision{}, err
	}

	user := fmt.Sprintf("User profile: %s\n\nConversation context:\n%s\nNew message: %s\n\nRoute this request.",
		profileJSON, convo.String(), message)

	raw, err := r.gen.Generate(ctx, routingPrompt, user, 500, 0.1)
	if err != nil {
		return domain.RoutingDecision{}, err
	}

	var decision domain.RoutingDecision
	if err := parseJSON(raw, &decision); err != nil {
		return domain.RoutingDecision{}, err
	}

	return decision, nil
}

// guarded evaluates the dispatch policy. Engine failures are logged and
// treated as allow; the guardrail never turns into a surfaced error.
func (r *Router) guarded(ctx context.Context, decision domain.RoutingDecision, profile domain.UserProfile) bool {
	if r.policyEngine == nil {
		return false
	}

	verdict, err := r.policyEngine.Evaluate(ctx, policy.DispatchInput{
		Agent:  string(decision.Agent),
		Action: strings.ToLower(decision.Action),
		Profile: policy.InputProfile{
			Age:      profile.Age,
			SkinType: string(profile.SkinType),
		},
	})
	if err != nil {
		log.Printf("WARN: dispatch policy evaluation failed: %v", err)
		return false
	}

	return verdict == policy.DecisionGuard
}

// dispatch invokes the selected agent operation. Unrecognized categories
// and actions degrade to clarification or guidance, never to an error.
func (r *Router) dispatch(ctx context.Context, decision domain.RoutingDecision, message string, profile domain.UserProfile) (string, domain.AgentKind) {
	action := strings.ToLower(decision.Action)

	switch decision.Agent {
	case domain.AgentProfile:
		if strings.Contains(action, "analyze") {
			extraction := r.profileAgent.AnalyzeDescription(ctx, message)
			return formatProfileReply(extraction), domain.AgentProfile
		}
		questions := r.profileAgent.GenerateQuestions(ctx, profile)
		return "I'd love to know more! " + questions[0], domain.AgentProfile

	case domain.AgentAnalysis:
		if strings.Contains(action, "interaction") {
			if ingredients := ingredientsParam(decision.Parameters); len(ingredients) > 0 {
				warnings := r.analysisAgent.CheckInteractions(ctx, ingredients)
				return formatInteractionsReply(warnings), domain.AgentAnalysis
			}
		}
		return analysisGuidance, domain.AgentAnalysis

	case domain.AgentRecommendation:
		if strings.Contains(action, "routine") {
			routine := r.recommendation.BuildRoutine(ctx, profile, budgetParam(decision.Parameters))
			if routine.Error != "" {
				return clarificationReply, domain.AgentChat
			}
			return formatRoutineReply(routine), domain.AgentRecommendation
		}
		return recommendationGuidance, domain.AgentRecommendation

	case domain.AgentChat:
		return r.chatAgent.Reply(ctx, message, profile), domain.AgentChat

	default:
		return clarificationReply, domain.AgentChat
	}
}

func ingredientsParam(params json.RawMessage) []string {
	if len(params) == 0 {
		return nil
	}
	var p struct {
		Ingredients []string `json:"ingredients"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil
	}
	return p.Ingredients
}

func budgetParam(params json.RawMessage) domain.Budget {
	if len(params) == 0 {
		return domain.BudgetMid
	}
	var p struct {
		Budget string `json:"budget"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return domain.BudgetMid
	}
	switch domain.Budget(p.Budget) {
	case domain.BudgetLow, domain.BudgetMid, domain.BudgetPremium:
		return domain.Budget(p.Budget)
	}
	return domain.BudgetMid
}

// formatProfileReply turns an extraction into a friendly message.
func formatProfileReply(extraction domain.ProfileExtraction) string {
	reply := fmt.Sprintf("Got it! I see you have %s skin", extraction.SkinType)
	if len(extraction.Concerns) > 0 {
		reply += fmt.Sprintf(" with concerns about %s", strings.Join(extraction.Concerns, ", "))
	}
	reply += ". "

	if len(extraction.FollowUpQuestions) > 0 {
		reply += "\n\n" + extraction.FollowUpQuestions[0]
	}

	return reply
}

func formatInteractionsReply(warnings []string) string {
	if len(warnings) == 0 {
		return "I didn't find any known adverse combinations in that ingredient list."
	}
	return "A few combinations to watch:\n- " + strings.Join(warnings, "\n- ")
}

func formatRoutineReply(routine domain.Routine) string {
	reply := fmt.Sprintf("Here's your routine: %d morning steps, %d night steps, %d weekly treatments.",
		len(routine.Morning), len(routine.Night), len(routine.Weekly))
	if routine.ExpectedResults != "" {
		reply += " " + routine.ExpectedResults
	}
	return reply
}
