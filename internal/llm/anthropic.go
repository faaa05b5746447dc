package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicProvider struct {
	client anthropic.Client
}

// NewAnthropicProvider returns a Provider backed by the Anthropic Messages API.
// A failed call is reported to the user as-is, so the client never retries.
func NewAnthropicProvider(baseURL, apiKey string) Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &anthropicProvider{client: anthropic.NewClient(opts...)}
}

func (p *anthropicProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  make([]anthropic.MessageParam, 0, len(req.Messages)),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	for _, msg := range req.Messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == RoleAssistant {
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(block))
		} else {
			params.Messages = append(params.Messages, anthropic.NewUserMessage(block))
		}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, translateAnthropicError(err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &CompletionResponse{
		Model:      string(resp.Model),
		Text:       text.String(),
		StopReason: string(resp.StopReason),
	}, nil
}

type anthropicErrorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// translateAnthropicError turns an API failure into a BackendError, preferring
// the human readable message over the machine error type.
func translateAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("messages request failed: %w", err)
	}

	var body anthropicErrorBody
	if jsonErr := json.Unmarshal([]byte(apiErr.RawJSON()), &body); jsonErr == nil {
		switch {
		case body.Error.Message != "":
			return &BackendError{StatusCode: apiErr.StatusCode, Reason: body.Error.Message}
		case body.Error.Type != "":
			return &BackendError{StatusCode: apiErr.StatusCode, Reason: body.Error.Type}
		}
	}
	return &BackendError{StatusCode: apiErr.StatusCode, Reason: http.StatusText(apiErr.StatusCode)}
}
