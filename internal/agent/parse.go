package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError marks a well-formed model reply whose payload could not be
// decoded into the expected shape.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse structured output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseJSON strips conversational wrapping from raw model output and
// decodes the remaining payload into v. It performs no semantic
// validation; each agent clamps the fields it depends on after decode.
func parseJSON(raw string, v any) error {
	payload := stripFences(raw)
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return &ParseError{Raw: payload, Err: err}
	}
	return nil
}

// stripFences removes a single surrounding markdown code fence, including
// a json language tag, and trims whitespace.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}

	return strings.TrimSpace(s)
}

// clampScore clamps an integer score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// clampFraction clamps a float to [0,1].
func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
