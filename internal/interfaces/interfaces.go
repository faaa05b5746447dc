package interfaces

import (
	"context"

	"chatbuilder/backend/internal/model"
	"chatbuilder/backend/internal/service"
)

// This file defines the interfaces for our core services.
// Handlers depend on these instead of the concrete services so they can be
// tested against mocks.

// ChatService covers chat history and the live chat sessions.
type ChatService interface {
	ListChats(ctx context.Context, user *model.User) ([]model.ChatSummary, error)
	GetFullChat(ctx context.Context, user *model.User, chatID string) (*model.FullChat, error)
	UpdateChatTitle(ctx context.Context, user *model.User, chatID, newTitle string) error
	DeleteChat(ctx context.Context, user *model.User, chatID, viewingChatID string) (*service.DeleteResult, error)

	OpenChat(ctx context.Context, user *model.User, chatID, initialPrompt string) (*service.OpenResult, error)
	SendMessage(ctx context.Context, user *model.User, chatID, content string) (*service.SubmitResult, error)
	CancelResponse(ctx context.Context, user *model.User, chatID string) (bool, error)
	GetSession(ctx context.Context, user *model.User, chatID string) (model.SessionSnapshot, error)
	CloseChat(ctx context.Context, user *model.User, chatID string) error
}

// SettingsService defines the contract for per-user model settings.
type SettingsService interface {
	Load(ctx context.Context, user *model.User) model.ModelSettings
	SetEnabledModels(ctx context.Context, user *model.User, ids []string) (model.ModelSettings, error)
	SetSelectedModel(ctx context.Context, user *model.User, id *string) (model.ModelSettings, error)
}

// ModelService defines the contract for the model catalog.
type ModelService interface {
	List(ctx context.Context) []model.CatalogModel
	DisplayName(id string) string
}

// BillingService defines the contract for the subscription surface.
type BillingService interface {
	GetSubscriptionDetails(ctx context.Context, accessToken string) service.SubscriptionDetails
	CancelSubscription(ctx context.Context, accessToken, subscriptionID string) error
	ReactivateSubscription(ctx context.Context, accessToken, subscriptionID string) error
	CreateCheckout(ctx context.Context, accessToken, priceID string) (string, error)
}

var (
	_ ChatService     = (*service.ChatService)(nil)
	_ SettingsService = (*service.SettingsService)(nil)
	_ ModelService    = (*service.ModelService)(nil)
	_ BillingService  = (*service.BillingService)(nil)
)
