package llm

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a Generator for tests and offline runs. It returns the
// configured response or error and records every call.
type MockClient struct {
	mu       sync.Mutex
	Response string
	Err      error
	Calls    []MockCall
}

// MockCall captures the arguments of one Generate invocation.
type MockCall struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// NewMockClient creates a new mock generator.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Generate records the call and returns the configured response.
func (m *MockClient) Generate(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{
		System:      system,
		User:        user,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})

	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return fmt.Sprintf("[MOCK] Received your message: %q.", truncate(user, 100)), nil
}

// SetResponse configures the canned response.
func (m *MockClient) SetResponse(response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Response = response
	m.Err = nil
}

// SetError configures the mock to fail.
func (m *MockClient) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// CallCount returns the number of Generate calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
