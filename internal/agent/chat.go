package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/skinwise/skinwise/internal/adapter/llm"
	"github.com/skinwise/skinwise/internal/domain"
)

// chatFallbackReply is returned whenever the conversational path fails.
const chatFallbackReply = "I'm here to help with your skincare questions!"

// ChatAgent produces free-form conversational replies.
type ChatAgent struct {
	gen llm.Generator
}

// NewChatAgent creates a chat agent over the given generator.
func NewChatAgent(gen llm.Generator) *ChatAgent {
	return &ChatAgent{gen: gen}
}

// Reply answers a general skincare message in the context of the user's
// profile. The reply is plain text; no parsing is involved.
func (a *ChatAgent) Reply(ctx context.Context, message string, profile domain.UserProfile) string {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return chatFallbackReply
	}

	user := fmt.Sprintf("User profile: %s\n\nMessage: %s", profileJSON, message)

	reply, err := a.gen.Generate(ctx, chatPrompt, user, 500, 0.7)
	if err != nil {
		log.Printf("WARN: chat generation failed: %v", err)
		return chatFallbackReply
	}

	return reply
}
