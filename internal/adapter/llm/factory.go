package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvSkinwiseMode is the environment variable name for mode selection.
	EnvSkinwiseMode = "SKINWISE_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewGenerator creates a Generator based on the SKINWISE_MODE environment
// variable. If SKINWISE_MODE=MOCK, returns a MockClient; otherwise returns
// a real Anthropic client.
func NewGenerator(apiKey, model, baseURL string, timeout time.Duration) Generator {
	mode := os.Getenv(EnvSkinwiseMode)

	if mode == ModeMock {
		log.Println("SKINWISE_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}

	return NewAnthropicClient(apiKey, model, baseURL, timeout)
}
