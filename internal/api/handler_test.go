package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chatbuilder/backend/internal/api"
	"chatbuilder/backend/internal/auth"
	app_errors "chatbuilder/backend/internal/errors"
	"chatbuilder/backend/internal/interfaces/mocks"
	"chatbuilder/backend/internal/model"
	"chatbuilder/backend/internal/service"
)

var testUser = &model.User{ID: "user-1", Email: "user@example.com"}

func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatService) {
	mockChatSvc := mocks.NewMockChatService(t)
	return api.NewChatHandler(mockChatSvc), mockChatSvc
}

// addChiURLParams injects URL parameters the way the chi router does.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

// signedIn attaches an authenticated identity to the request.
func signedIn(req *http.Request, user *model.User) *http.Request {
	return req.WithContext(auth.WithIdentity(req.Context(), auth.NewIdentity(user, "token-1")))
}

func TestChatHandler_GetChats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, mockChatSvc := setupChatHandler(t)
		expectedChats := []model.ChatSummary{{ID: "chat1", Title: "Test Chat"}}
		mockChatSvc.On("ListChats", mock.Anything, testUser).Return(expectedChats, nil).Once()

		// ACT
		req := signedIn(httptest.NewRequest(http.MethodGet, "/api/v1/chats", nil), testUser)
		rr := httptest.NewRecorder()
		handler.GetChats(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.ChatListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "chat1", resp.Chats[0].ID)
		assert.Empty(t, resp.Error)
	})

	t.Run("Storage failure yields empty list", func(t *testing.T) {
		// ARRANGE
		handler, mockChatSvc := setupChatHandler(t)
		mockChatSvc.On("ListChats", mock.Anything, testUser).Return(nil, app_errors.ErrInternal).Once()

		// ACT
		req := signedIn(httptest.NewRequest(http.MethodGet, "/api/v1/chats", nil), testUser)
		rr := httptest.NewRecorder()
		handler.GetChats(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"chats":[],"error":"Could not load chat history."}`, rr.Body.String())
	})
}

func TestChatHandler_GetChat(t *testing.T) {
	chatID := "test-chat-id"

	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Success", expectedStatus: http.StatusOK},
		{name: "Not found", serviceErr: app_errors.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "Other user's chat", serviceErr: app_errors.ErrPermission, expectedStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// ARRANGE
			handler, mockChatSvc := setupChatHandler(t)
			var fullChat *model.FullChat
			if tc.serviceErr == nil {
				fullChat = &model.FullChat{Chat: model.Chat{ID: chatID}}
			}
			mockChatSvc.On("GetFullChat", mock.Anything, testUser, chatID).Return(fullChat, tc.serviceErr).Once()

			// ACT
			req := signedIn(httptest.NewRequest(http.MethodGet, "/api/v1/chats/"+chatID, nil), testUser)
			req = addChiURLParams(req, map[string]string{"chatID": chatID})
			rr := httptest.NewRecorder()
			handler.GetChat(rr, req)

			// ASSERT
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestChatHandler_UpdateChatTitle(t *testing.T) {
	chatID := "test-chat-id"

	testCases := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockChatService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"title":"New Title"}`,
			setupMock: func(m *mocks.MockChatService) {
				m.On("UpdateChatTitle", mock.Anything, testUser, chatID, "New Title").Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing title",
			body:           `{}`,
			setupMock:      func(m *mocks.MockChatService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"title":`,
			setupMock:      func(m *mocks.MockChatService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Chat not found",
			body: `{"title":"New Title"}`,
			setupMock: func(m *mocks.MockChatService) {
				m.On("UpdateChatTitle", mock.Anything, testUser, chatID, "New Title").Return(app_errors.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// ARRANGE
			handler, mockChatSvc := setupChatHandler(t)
			tc.setupMock(mockChatSvc)

			// ACT
			req := signedIn(httptest.NewRequest(http.MethodPut, "/api/v1/chats/"+chatID+"/title", strings.NewReader(tc.body)), testUser)
			req = addChiURLParams(req, map[string]string{"chatID": chatID})
			rr := httptest.NewRecorder()
			handler.UpdateChatTitle(rr, req)

			// ASSERT
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestChatHandler_HandleDeleteChat(t *testing.T) {
	t.Run("Deleting the viewed chat redirects home", func(t *testing.T) {
		// ARRANGE
		handler, mockChatSvc := setupChatHandler(t)
		mockChatSvc.On("DeleteChat", mock.Anything, testUser, "chat-1", "chat-1").
			Return(&service.DeleteResult{Redirect: "/"}, nil).Once()

		// ACT
		req := signedIn(httptest.NewRequest(http.MethodDelete, "/api/v1/chats/chat-1?current=chat-1", nil), testUser)
		req = addChiURLParams(req, map[string]string{"chatID": "chat-1"})
		rr := httptest.NewRecorder()
		handler.HandleDeleteChat(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"redirect":"/"}`, rr.Body.String())
	})

	t.Run("Failure", func(t *testing.T) {
		// ARRANGE
		handler, mockChatSvc := setupChatHandler(t)
		mockChatSvc.On("DeleteChat", mock.Anything, testUser, "chat-1", "").
			Return(nil, errors.New("disk I/O error")).Once()

		// ACT
		req := signedIn(httptest.NewRequest(http.MethodDelete, "/api/v1/chats/chat-1", nil), testUser)
		req = addChiURLParams(req, map[string]string{"chatID": "chat-1"})
		rr := httptest.NewRecorder()
		handler.HandleDeleteChat(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "internal server error")
	})
}

func TestChatHandler_OpenSession(t *testing.T) {
	t.Run("Initial prompt is passed through", func(t *testing.T) {
		// ARRANGE
		handler, mockChatSvc := setupChatHandler(t)
		result := &service.OpenResult{
			Session: model.SessionSnapshot{ChatID: "chat-1", Messages: []model.Message{}},
			Created: true,
		}
		mockChatSvc.On("OpenChat", mock.Anything, testUser, "chat-1", "hello").Return(result, nil).Once()

		// ACT
		body := strings.NewReader(`{"initial_prompt":"hello"}`)
		req := signedIn(httptest.NewRequest(http.MethodPost, "/api/v1/chats/chat-1/session", body), testUser)
		req = addChiURLParams(req, map[string]string{"chatID": "chat-1"})
		rr := httptest.NewRecorder()
		handler.OpenSession(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		var got service.OpenResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, got.Created)
		assert.Equal(t, "chat-1", got.Session.ChatID)
	})

	t.Run("Empty body opens without prompt", func(t *testing.T) {
		// ARRANGE
		handler, mockChatSvc := setupChatHandler(t)
		mockChatSvc.On("OpenChat", mock.Anything, testUser, "chat-1", "").
			Return(&service.OpenResult{Session: model.SessionSnapshot{ChatID: "chat-1"}}, nil).Once()

		// ACT
		req := signedIn(httptest.NewRequest(http.MethodPost, "/api/v1/chats/chat-1/session", nil), testUser)
		req = addChiURLParams(req, map[string]string{"chatID": "chat-1"})
		rr := httptest.NewRecorder()
		handler.OpenSession(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestChatHandler_SendMessage(t *testing.T) {
	testCases := []struct {
		name           string
		result         *service.SubmitResult
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Accepted",
			result:         &service.SubmitResult{Accepted: true, Session: model.SessionSnapshot{ChatID: "chat-1"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Rejected is not an error",
			result:         &service.SubmitResult{Accepted: false, Reason: "a response is already in progress", Session: model.SessionSnapshot{ChatID: "chat-1"}},
			expectedStatus: http.StatusOK,
			expectedBody:   "a response is already in progress",
		},
		{
			name:           "Other user's chat",
			serviceErr:     app_errors.ErrPermission,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// ARRANGE
			handler, mockChatSvc := setupChatHandler(t)
			mockChatSvc.On("SendMessage", mock.Anything, testUser, "chat-1", "hi").Return(tc.result, tc.serviceErr).Once()

			// ACT
			body := strings.NewReader(`{"content":"hi"}`)
			req := signedIn(httptest.NewRequest(http.MethodPost, "/api/v1/chats/chat-1/messages", body), testUser)
			req = addChiURLParams(req, map[string]string{"chatID": "chat-1"})
			rr := httptest.NewRecorder()
			handler.SendMessage(rr, req)

			// ASSERT
			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tc.expectedBody)
			}
		})
	}
}

func TestChatHandler_SessionControls(t *testing.T) {
	t.Run("Cancel", func(t *testing.T) {
		handler, mockChatSvc := setupChatHandler(t)
		mockChatSvc.On("CancelResponse", mock.Anything, testUser, "chat-1").Return(true, nil).Once()

		req := signedIn(httptest.NewRequest(http.MethodPost, "/api/v1/chats/chat-1/cancel", nil), testUser)
		req = addChiURLParams(req, map[string]string{"chatID": "chat-1"})
		rr := httptest.NewRecorder()
		handler.CancelResponse(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"cancelled":true}`, rr.Body.String())
	})

	t.Run("Snapshot of unknown session", func(t *testing.T) {
		handler, mockChatSvc := setupChatHandler(t)
		mockChatSvc.On("GetSession", mock.Anything, testUser, "chat-1").
			Return(model.SessionSnapshot{}, app_errors.ErrNotFound).Once()

		req := signedIn(httptest.NewRequest(http.MethodGet, "/api/v1/chats/chat-1/session", nil), testUser)
		req = addChiURLParams(req, map[string]string{"chatID": "chat-1"})
		rr := httptest.NewRecorder()
		handler.GetSession(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Close", func(t *testing.T) {
		handler, mockChatSvc := setupChatHandler(t)
		mockChatSvc.On("CloseChat", mock.Anything, testUser, "chat-1").Return(nil).Once()

		req := signedIn(httptest.NewRequest(http.MethodDelete, "/api/v1/chats/chat-1/session", nil), testUser)
		req = addChiURLParams(req, map[string]string{"chatID": "chat-1"})
		rr := httptest.NewRecorder()
		handler.CloseSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
