package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient implements Generator over the Anthropic Messages API.
type AnthropicClient struct {
	client  *anthropic.Client
	model   string
	timeout time.Duration
}

// NewAnthropicClient creates a client for the given model. baseURL is
// optional and overrides the API endpoint when set.
func NewAnthropicClient(apiKey, model, baseURL string, timeout time.Duration) *AnthropicClient {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(opts...)

	return &AnthropicClient{
		client:  &client,
		model:   model,
		timeout: timeout,
	}
}

// Generate sends a single non-streaming message request and returns the
// concatenated text content of the reply.
func (c *AnthropicClient) Generate(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
		Temperature: anthropic.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrGeneration)
	}

	return text, nil
}
