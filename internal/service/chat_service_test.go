package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "chatbuilder/backend/internal/errors"
	"chatbuilder/backend/internal/llm"
	llmmocks "chatbuilder/backend/internal/llm/mocks"
	"chatbuilder/backend/internal/model"
	"chatbuilder/backend/internal/repository"
	repomocks "chatbuilder/backend/internal/repository/mocks"
	"chatbuilder/backend/internal/service"
	"chatbuilder/backend/internal/session"
)

type chatFixture struct {
	service  *service.ChatService
	repo     *repomocks.MockChatRepository
	profiles *repomocks.MockProfileRepository
	provider *llmmocks.MockProvider
	sessions *session.Manager
}

func setupChatService(t *testing.T) *chatFixture {
	repo := repomocks.NewMockChatRepository(t)
	profiles := repomocks.NewMockProfileRepository(t)
	provider := llmmocks.NewMockProvider(t)

	defaults := model.ModelSettings{EnabledModels: []string{"m1", "m2"}, SelectedModel: strPtr("m1")}
	settings := service.NewSettingsService(profiles, service.NewModelService("m1", "m2"), defaults)
	sessions := session.NewManager(llm.NewDispatcher(provider, 512, ""), time.Hour,
		session.WithObserver(service.NewHistoryRecorder(repo)))

	return &chatFixture{
		service:  service.NewChatService(repo, sessions, settings),
		repo:     repo,
		profiles: profiles,
		provider: provider,
		sessions: sessions,
	}
}

// expectFreshChat sets up a chat that has no stored record, a user without a
// profile and a recorder that accepts every write.
func (f *chatFixture) expectFreshChat(chatID string) {
	f.repo.On("GetChat", mock.Anything, chatID).Return(nil, repository.ErrNotFound).Maybe()
	f.profiles.On("GetProfile", mock.Anything, "user-1").Return(nil, repository.ErrNotFound).Maybe()
	f.repo.On("CreateChat", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.repo.On("AddMessage", mock.Anything, chatID, mock.Anything).Return(nil).Maybe()
}

func TestChatService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - New chat is recorded", func(t *testing.T) {
		// ARRANGE
		f := setupChatService(t)
		f.repo.On("GetChat", mock.Anything, "chat-1").Return(nil, repository.ErrNotFound).Once()
		f.profiles.On("GetProfile", mock.Anything, "user-1").Return(nil, repository.ErrNotFound).Once()
		f.provider.On("Complete", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
			return req.Model == "m1" && len(req.Messages) == 1 && req.Messages[0].Content == "Build me a bot"
		})).Return(&llm.CompletionResponse{Text: "Sure!"}, nil).Once()
		f.repo.On("CreateChat", mock.Anything, mock.MatchedBy(func(c *model.Chat) bool {
			return c.ID == "chat-1" && c.UserID == "user-1" && c.Title == "Build me a bot"
		})).Return(nil).Once()
		f.repo.On("AddMessage", mock.Anything, "chat-1", mock.MatchedBy(func(m *model.Message) bool {
			return m.Sender == model.SenderUser
		})).Return(nil).Once()
		f.repo.On("AddMessage", mock.Anything, "chat-1", mock.MatchedBy(func(m *model.Message) bool {
			return m.Sender == model.SenderAssistant && m.Content == "Sure!"
		})).Return(nil).Once()

		// ACT
		result, err := f.service.SendMessage(ctx, testUser, "chat-1", "  Build me a bot ")

		// ASSERT
		require.NoError(t, err)
		assert.True(t, result.Accepted)
		require.NotNil(t, result.Turn)
		assert.Equal(t, "Sure!", result.Turn.Reply.Content)
		assert.False(t, result.Turn.Failed)
		assert.Len(t, result.Session.Messages, 2)
		assert.False(t, result.Session.IsResponding)
	})

	t.Run("Rejected - Whitespace prompt", func(t *testing.T) {
		f := setupChatService(t)
		f.expectFreshChat("chat-1")

		result, err := f.service.SendMessage(ctx, testUser, "chat-1", "   \n ")
		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Equal(t, "prompt is empty", result.Reason)
		assert.Empty(t, result.Session.Messages)
	})

	t.Run("Rejected - No model selected", func(t *testing.T) {
		f := setupChatService(t)
		f.repo.On("GetChat", mock.Anything, "chat-1").Return(nil, repository.ErrNotFound).Once()
		f.profiles.On("GetProfile", mock.Anything, "user-1").
			Return(&model.ModelSettings{EnabledModels: []string{}}, nil).Once()

		result, err := f.service.SendMessage(ctx, testUser, "chat-1", "hello")
		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Equal(t, "no model selected", result.Reason)
	})

	t.Run("Failure - Backend error becomes an assistant message", func(t *testing.T) {
		f := setupChatService(t)
		f.expectFreshChat("chat-1")
		f.provider.On("Complete", mock.Anything, mock.Anything).
			Return(nil, &llm.BackendError{StatusCode: 529, Reason: "Overloaded"}).Once()

		result, err := f.service.SendMessage(ctx, testUser, "chat-1", "hello")
		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.True(t, result.Turn.Failed)
		assert.Equal(t, "Error: Overloaded", result.Turn.Reply.Content)
	})

	t.Run("Failure - Anonymous user", func(t *testing.T) {
		f := setupChatService(t)

		_, err := f.service.SendMessage(ctx, nil, "chat-1", "hello")
		assert.ErrorIs(t, err, app_errors.ErrPermission)
	})
}

func TestChatService_OpenChat(t *testing.T) {
	ctx := context.Background()

	t.Run("Initial prompt fires once", func(t *testing.T) {
		f := setupChatService(t)
		f.expectFreshChat("chat-1")
		f.provider.On("Complete", mock.Anything, mock.Anything).
			Return(&llm.CompletionResponse{Text: "Welcome"}, nil).Once()

		opened, err := f.service.OpenChat(ctx, testUser, "chat-1", "Create a support bot")
		require.NoError(t, err)
		assert.True(t, opened.Created)
		require.NotNil(t, opened.Turn)
		assert.Equal(t, "Create a support bot", opened.Turn.User.Content)
		assert.Len(t, opened.Session.Messages, 2)

		again, err := f.service.OpenChat(ctx, testUser, "chat-1", "Create a support bot")
		require.NoError(t, err)
		assert.False(t, again.Created)
		assert.Nil(t, again.Turn)
		assert.Len(t, again.Session.Messages, 2)
	})

	t.Run("Stored chat is restored and the prompt discarded", func(t *testing.T) {
		f := setupChatService(t)
		f.repo.On("GetChat", mock.Anything, "chat-1").
			Return(&model.Chat{ID: "chat-1", UserID: "user-1", Title: "Old"}, nil).Once()
		f.repo.On("GetMessages", mock.Anything, "chat-1").Return([]model.Message{
			{ID: "a", Sender: model.SenderUser, Content: "earlier"},
			{ID: "b", Sender: model.SenderAssistant, Content: "answer"},
		}, nil).Once()
		f.profiles.On("GetProfile", mock.Anything, "user-1").Return(nil, repository.ErrNotFound).Once()

		opened, err := f.service.OpenChat(ctx, testUser, "chat-1", "new prompt")
		require.NoError(t, err)
		assert.Nil(t, opened.Turn)
		assert.Len(t, opened.Session.Messages, 2)
		assert.False(t, opened.Session.HasPendingPrompt)
	})

	t.Run("Failure - Chat owned by someone else", func(t *testing.T) {
		f := setupChatService(t)
		f.repo.On("GetChat", mock.Anything, "chat-1").
			Return(&model.Chat{ID: "chat-1", UserID: "user-2"}, nil).Once()

		_, err := f.service.OpenChat(ctx, testUser, "chat-1", "")
		assert.ErrorIs(t, err, app_errors.ErrPermission)
		assert.Equal(t, 0, f.sessions.Len())
	})
}

func TestChatService_DeleteChat(t *testing.T) {
	ctx := context.Background()
	owned := &model.Chat{ID: "chat-1", UserID: "user-1"}

	testCases := []struct {
		name             string
		viewing          string
		setupMock        func(repo *repomocks.MockChatRepository)
		expectedRedirect string
		expectedErr      error
	}{
		{
			name:    "Viewing the deleted chat redirects home",
			viewing: "chat-1",
			setupMock: func(repo *repomocks.MockChatRepository) {
				repo.On("GetChat", mock.Anything, "chat-1").Return(owned, nil).Once()
				repo.On("DeleteChat", mock.Anything, "chat-1").Return(nil).Once()
			},
			expectedRedirect: "/",
		},
		{
			name:    "Deleting another chat stays put",
			viewing: "chat-9",
			setupMock: func(repo *repomocks.MockChatRepository) {
				repo.On("GetChat", mock.Anything, "chat-1").Return(owned, nil).Once()
				repo.On("DeleteChat", mock.Anything, "chat-1").Return(nil).Once()
			},
		},
		{
			name: "Not found",
			setupMock: func(repo *repomocks.MockChatRepository) {
				repo.On("GetChat", mock.Anything, "chat-1").Return(nil, repository.ErrNotFound).Once()
			},
			expectedErr: app_errors.ErrNotFound,
		},
		{
			name: "Someone else's chat",
			setupMock: func(repo *repomocks.MockChatRepository) {
				repo.On("GetChat", mock.Anything, "chat-1").Return(&model.Chat{ID: "chat-1", UserID: "user-2"}, nil).Once()
			},
			expectedErr: app_errors.ErrPermission,
		},
		{
			name: "Storage failure",
			setupMock: func(repo *repomocks.MockChatRepository) {
				repo.On("GetChat", mock.Anything, "chat-1").Return(owned, nil).Once()
				repo.On("DeleteChat", mock.Anything, "chat-1").Return(errors.New("locked")).Once()
			},
			expectedErr: app_errors.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupChatService(t)
			tc.setupMock(f.repo)

			result, err := f.service.DeleteChat(ctx, testUser, "chat-1", tc.viewing)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedRedirect, result.Redirect)
		})
	}

	t.Run("Closes the live session of an unrecorded chat", func(t *testing.T) {
		f := setupChatService(t)
		f.expectFreshChat("chat-1")

		_, err := f.service.OpenChat(ctx, testUser, "chat-1", "")
		require.NoError(t, err)
		require.Equal(t, 1, f.sessions.Len())

		result, err := f.service.DeleteChat(ctx, testUser, "chat-1", "chat-1")
		require.NoError(t, err)
		assert.Equal(t, "/", result.Redirect)
		assert.Equal(t, 0, f.sessions.Len())
	})
}

func TestChatService_ListChats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupChatService(t)
		now := time.Now()
		f.repo.On("GetChats", mock.Anything, "user-1").Return([]*model.Chat{
			{ID: "chat-2", Title: "Newer", UpdatedAt: now},
			{ID: "chat-1", Title: "Older", UpdatedAt: now.Add(-time.Hour)},
		}, nil).Once()

		chats, err := f.service.ListChats(ctx, testUser)
		require.NoError(t, err)
		require.Len(t, chats, 2)
		assert.Equal(t, model.ChatSummary{ID: "chat-2", Title: "Newer", UpdatedAt: now}, chats[0])
	})

	t.Run("Failure - Storage error", func(t *testing.T) {
		f := setupChatService(t)
		f.repo.On("GetChats", mock.Anything, "user-1").Return(nil, errors.New("db down")).Once()

		chats, err := f.service.ListChats(ctx, testUser)
		assert.Nil(t, chats)
		assert.ErrorIs(t, err, app_errors.ErrInternal)
	})
}

func TestChatService_UpdateChatTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupChatService(t)
		f.repo.On("GetChat", mock.Anything, "chat-1").Return(&model.Chat{ID: "chat-1", UserID: "user-1"}, nil).Once()
		f.repo.On("UpdateChatTitle", mock.Anything, "chat-1", "Support bot").Return(nil).Once()

		require.NoError(t, f.service.UpdateChatTitle(ctx, testUser, "chat-1", " Support bot "))
	})

	t.Run("Failure - Empty title", func(t *testing.T) {
		f := setupChatService(t)

		err := f.service.UpdateChatTitle(ctx, testUser, "chat-1", "   ")
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestChatService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	f := setupChatService(t)

	_, err := f.service.GetSession(ctx, testUser, "chat-1")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)

	cancelled, err := f.service.CancelResponse(ctx, testUser, "chat-1")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
	assert.False(t, cancelled)

	f.expectFreshChat("chat-1")
	_, err = f.service.OpenChat(ctx, testUser, "chat-1", "")
	require.NoError(t, err)

	snapshot, err := f.service.GetSession(ctx, testUser, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, "chat-1", snapshot.ChatID)

	cancelled, err = f.service.CancelResponse(ctx, testUser, "chat-1")
	require.NoError(t, err)
	assert.False(t, cancelled, "nothing in flight")

	_, err = f.service.GetSession(ctx, &model.User{ID: "user-2"}, "chat-1")
	assert.ErrorIs(t, err, app_errors.ErrPermission)

	require.NoError(t, f.service.CloseChat(ctx, testUser, "chat-1"))
	assert.ErrorIs(t, f.service.CloseChat(ctx, testUser, "chat-1"), app_errors.ErrNotFound)
}
