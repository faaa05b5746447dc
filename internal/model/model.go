package model

import (
	"slices"
	"time"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is a single entry of a chat log. It is never mutated after creation.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Chat stores history metadata about a conversation.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatSummary is one entry of the sidebar history list.
type ChatSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullChat includes the chat metadata and all its stored messages.
type FullChat struct {
	Chat
	Messages []Message `json:"messages"`
}

// SessionSnapshot is a point-in-time copy of a live chat session.
type SessionSnapshot struct {
	ChatID           string    `json:"chat_id"`
	Messages         []Message `json:"messages"`
	IsResponding     bool      `json:"is_responding"`
	HasPendingPrompt bool      `json:"has_pending_prompt"`
}

// ModelSettings holds the models a user may pick from and the current pick.
type ModelSettings struct {
	EnabledModels []string `json:"enabled_models"`
	SelectedModel *string  `json:"selected_model"`
}

// Normalize returns a copy where SelectedModel is either nil or a member of
// EnabledModels. A stale selection falls back to the first enabled model.
func (s ModelSettings) Normalize() ModelSettings {
	out := ModelSettings{EnabledModels: slices.Clone(s.EnabledModels)}
	if out.EnabledModels == nil {
		out.EnabledModels = []string{}
	}
	if s.SelectedModel != nil && slices.Contains(out.EnabledModels, *s.SelectedModel) {
		selected := *s.SelectedModel
		out.SelectedModel = &selected
		return out
	}
	if len(out.EnabledModels) > 0 {
		first := out.EnabledModels[0]
		out.SelectedModel = &first
	}
	return out
}

// Selected returns the selected model id, or "" when none is selected.
func (s ModelSettings) Selected() string {
	if s.SelectedModel == nil {
		return ""
	}
	return *s.SelectedModel
}

// User is the authenticated account as reported by the auth service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CatalogModel is a completion model the product knows how to display.
type CatalogModel struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
