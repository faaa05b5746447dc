package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"chatbuilder/backend/internal/api"
	authmocks "chatbuilder/backend/internal/auth/mocks"
	"chatbuilder/backend/internal/interfaces/mocks"
	"chatbuilder/backend/internal/model"
	"chatbuilder/backend/internal/service"
)

type routerFixture struct {
	router   http.Handler
	chats    *mocks.MockChatService
	settings *mocks.MockSettingsService
	verifier *authmocks.MockVerifier
}

func setupRouter(t *testing.T, limiter *api.RateLimiter) routerFixture {
	f := routerFixture{
		chats:    mocks.NewMockChatService(t),
		settings: mocks.NewMockSettingsService(t),
		verifier: authmocks.NewMockVerifier(t),
	}
	modelSvc := mocks.NewMockModelService(t)
	f.router = api.NewRouter(api.Handlers{
		Chats:   api.NewChatHandler(f.chats),
		Models:  api.NewModelHandler(modelSvc, f.settings),
		Billing: api.NewBillingHandler(mocks.NewMockBillingService(t)),
	}, f.verifier, limiter)
	return f
}

func TestRouter_Healthz(t *testing.T) {
	f := setupRouter(t, api.NewRateLimiter(0, 0))

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRouter_Authentication(t *testing.T) {
	t.Run("Chats require a user", func(t *testing.T) {
		f := setupRouter(t, api.NewRateLimiter(0, 0))

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/chats", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Settings are readable anonymously", func(t *testing.T) {
		f := setupRouter(t, api.NewRateLimiter(0, 0))
		f.settings.On("Load", mock.Anything, (*model.User)(nil)).Return(model.ModelSettings{EnabledModels: []string{}}).Once()

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/settings/models", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Bearer token resolves the user", func(t *testing.T) {
		f := setupRouter(t, api.NewRateLimiter(0, 0))
		f.verifier.On("VerifyToken", mock.Anything, "token-1").Return(testUser, nil).Once()
		f.chats.On("ListChats", mock.Anything, testUser).Return([]model.ChatSummary{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/chats", nil)
		req.Header.Set("Authorization", "Bearer token-1")
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"chats":[]}`, rr.Body.String())
	})
}

func TestRouter_RateLimitsMessages(t *testing.T) {
	// ARRANGE: one request per second with no extra burst.
	f := setupRouter(t, api.NewRateLimiter(1, 1))
	f.verifier.On("VerifyToken", mock.Anything, "token-1").Return(testUser, nil)
	f.chats.On("SendMessage", mock.Anything, testUser, "chat-1", "hi").
		Return(&service.SubmitResult{Accepted: true}, nil).Once()

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chats/chat-1/messages", strings.NewReader(`{"content":"hi"}`))
		req.Header.Set("Authorization", "Bearer token-1")
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)
		return rr.Code
	}

	// ACT & ASSERT
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestRateLimiter_Sweep(t *testing.T) {
	limiter := api.NewRateLimiter(5, 5)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := signedIn(httptest.NewRequest(http.MethodPost, "/", nil), testUser)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 0, limiter.Sweep(time.Hour))
	assert.Equal(t, 1, limiter.Sweep(-time.Second))
	assert.Equal(t, 0, limiter.Sweep(-time.Second))
}
