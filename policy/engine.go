// Package policy gates agent dispatch decisions through OPA.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decision values returned by the policy.
const (
	DecisionAllow = "allow"
	DecisionGuard = "guard"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.dispatch_policy.decision"),
		rego.Module("dispatch_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// DispatchInput is the evaluation input for one routing decision.
type DispatchInput struct {
	Agent   string       `json:"agent"`
	Action  string       `json:"action"`
	Profile InputProfile `json:"profile"`
}

// InputProfile carries the profile fields the policy may inspect.
type InputProfile struct {
	Age      int    `json:"age"`
	SkinType string `json:"skin_type"`
}

// Evaluate checks the dispatch policy for a routed request. It returns
// DecisionAllow or DecisionGuard; the policy is expected to define a
// default.
func (e *Engine) Evaluate(ctx context.Context, input DispatchInput) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionAllow, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}

	return DecisionAllow, nil
}

// DefaultPolicy guards advice the service should not hand out
// unsupervised: routine building for young children and anything that
// drifts into prescription or medical territory.
const DefaultPolicy = `
package dispatch_policy

import rego.v1

default decision := "allow"

decision := "guard" if {
	input.agent == "RECOMMENDATION"
	input.profile.age > 0
	input.profile.age < 13
}

decision := "guard" if contains(input.action, "prescription")

decision := "guard" if contains(input.action, "medical")
`
