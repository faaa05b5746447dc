package repository

import (
	"context"

	"chatbuilder/backend/internal/model"
)

// ChatRepository stores the chat history shown in the sidebar.
type ChatRepository interface {
	// CreateChat inserts the chat; an existing chat with the same id is left as is.
	CreateChat(ctx context.Context, chat *model.Chat) error
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	// GetChats lists a user's chats, most recently updated first.
	GetChats(ctx context.Context, userID string) ([]*model.Chat, error)
	UpdateChatTitle(ctx context.Context, chatID, newTitle string) error
	DeleteChat(ctx context.Context, chatID string) error

	AddMessage(ctx context.Context, chatID string, message *model.Message) error
	GetMessages(ctx context.Context, chatID string) ([]model.Message, error)
}

// ProfileRepository stores per-user model preferences.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*model.ModelSettings, error)
	// UpsertProfile writes enabled and selected models together.
	UpsertProfile(ctx context.Context, userID string, settings model.ModelSettings) error
	// UpdateSelectedModel writes the selection alone. It returns ErrNotFound
	// when the user has no profile yet.
	UpdateSelectedModel(ctx context.Context, userID string, selected *string) error
}
