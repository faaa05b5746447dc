package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider defines the interface for a completion backend. Each call is
// self-contained: the backend keeps no conversation state between calls.
type Provider interface {
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// Role values understood by every provider.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Model     string    `json:"model"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type CompletionResponse struct {
	Model      string `json:"model"`
	Text       string `json:"text"`
	StopReason string `json:"stop_reason,omitempty"`
}

// ErrEmptyResponse is returned when the backend answered successfully but
// produced no text.
var ErrEmptyResponse = errors.New("completion backend returned an empty response")

// BackendError is a failure reported by the completion backend itself, as
// opposed to a transport failure. Reason is safe to show to users.
type BackendError struct {
	StatusCode int
	Reason     string
}

func (e *BackendError) Error() string {
	if e.StatusCode == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s (status %d)", e.Reason, e.StatusCode)
}
