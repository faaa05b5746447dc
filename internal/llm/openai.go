package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

type openAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider returns a Provider for any OpenAI-compatible chat
// completions endpoint.
func NewOpenAIProvider(baseURL, apiKey string) Provider {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return &openAIProvider{client: openai.NewClientWithConfig(clientConfig)}
}

func (p *openAIProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, msg := range req.Messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     req.Model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return nil, translateOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &CompletionResponse{
		Model:      resp.Model,
		Text:       resp.Choices[0].Message.Content,
		StopReason: string(resp.Choices[0].FinishReason),
	}, nil
}

func translateOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		reason := apiErr.Message
		if reason == "" {
			reason = apiErr.Type
		}
		if reason == "" {
			reason = http.StatusText(apiErr.HTTPStatusCode)
		}
		return &BackendError{StatusCode: apiErr.HTTPStatusCode, Reason: reason}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &BackendError{StatusCode: reqErr.HTTPStatusCode, Reason: http.StatusText(reqErr.HTTPStatusCode)}
	}

	return fmt.Errorf("chat completion request failed: %w", err)
}
