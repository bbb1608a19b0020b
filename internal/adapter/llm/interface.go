// Package llm provides an abstraction over the generative text service.
package llm

import (
	"context"
	"errors"
)

// ErrGeneration marks transport, auth, or quota failures from the
// generative service. Callers match it with errors.Is and fall back to
// deterministic logic; nothing in this package retries.
var ErrGeneration = errors.New("generation failed")

// Generator is the single seam to the generative text service. Both
// instruction strings must be non-empty, maxTokens bounds the output
// length, and temperature in [0,1] controls sampling randomness.
// Implementations hold no per-call state and are safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error)
}

// Ensure implementations satisfy the interface.
var (
	_ Generator = (*AnthropicClient)(nil)
	_ Generator = (*MockClient)(nil)
)
