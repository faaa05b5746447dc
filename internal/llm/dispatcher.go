package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"chatbuilder/backend/internal/model"
)

// Dispatcher sends one chat log to the completion backend and returns the
// composed reply. It never retries: a failed generation is reported to the
// caller, who shows it to the user.
type Dispatcher struct {
	provider     Provider
	maxTokens    int
	systemPrompt string
}

func NewDispatcher(provider Provider, maxTokens int, systemPrompt string) *Dispatcher {
	return &Dispatcher{provider: provider, maxTokens: maxTokens, systemPrompt: systemPrompt}
}

// NewProvider builds the provider named by kind ("anthropic" or "openai").
func NewProvider(kind, anthropicURL, anthropicKey, openAIBaseURL, openAIKey string) (Provider, error) {
	switch strings.ToLower(kind) {
	case "", "anthropic":
		return NewAnthropicProvider(anthropicURL, anthropicKey), nil
	case "openai":
		return NewOpenAIProvider(openAIBaseURL, openAIKey), nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", kind)
	}
}

// Dispatch sends the full message log to modelID. The log is copied, never
// modified.
func (d *Dispatcher) Dispatch(ctx context.Context, messages []model.Message, modelID string) (string, error) {
	req := &CompletionRequest{
		Model:     modelID,
		System:    d.systemPrompt,
		Messages:  toProviderMessages(messages),
		MaxTokens: d.maxTokens,
	}

	slog.Debug("Dispatching completion request", "model", modelID, "messages", len(req.Messages))
	resp, err := d.provider.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Text, nil
}

func toProviderMessages(messages []model.Message) []Message {
	out := make([]Message, 0, len(messages))
	for _, msg := range messages {
		role := RoleUser
		if msg.Sender == model.SenderAssistant {
			role = RoleAssistant
		}
		out = append(out, Message{Role: role, Content: msg.Content})
	}
	return out
}
