package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMockClientDefaultResponse(t *testing.T) {
	mock := NewMockClient()

	reply, err := mock.Generate(context.Background(), "system", "hello there", 100, 0.5)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(reply, "[MOCK]") {
		t.Fatalf("unexpected default reply: %q", reply)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestMockClientRecordsCalls(t *testing.T) {
	mock := NewMockClient()
	mock.SetResponse("ok")

	if _, err := mock.Generate(context.Background(), "sys", "usr", 500, 0.1); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	call := mock.Calls[0]
	if call.System != "sys" || call.User != "usr" || call.MaxTokens != 500 || call.Temperature != 0.1 {
		t.Fatalf("unexpected recorded call: %+v", call)
	}
}

func TestMockClientError(t *testing.T) {
	mock := NewMockClient()
	mock.SetError(errors.New("boom"))

	if _, err := mock.Generate(context.Background(), "s", "u", 10, 0); err == nil {
		t.Fatalf("expected error")
	}

	// SetResponse clears a configured error.
	mock.SetResponse("recovered")
	reply, err := mock.Generate(context.Background(), "s", "u", 10, 0)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if reply != "recovered" {
		t.Fatalf("unexpected reply: %q", reply)
	}
}
