package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chatbuilder/backend/internal/api"
	app_errors "chatbuilder/backend/internal/errors"
	"chatbuilder/backend/internal/interfaces/mocks"
	"chatbuilder/backend/internal/model"
)

func setupModelHandler(t *testing.T) (*api.ModelHandler, *mocks.MockModelService, *mocks.MockSettingsService) {
	mockModelSvc := mocks.NewMockModelService(t)
	mockSettingsSvc := mocks.NewMockSettingsService(t)
	return api.NewModelHandler(mockModelSvc, mockSettingsSvc), mockModelSvc, mockSettingsSvc
}

func strPtr(s string) *string { return &s }

func TestModelHandler_HandleListModels(t *testing.T) {
	handler, mockModelSvc, _ := setupModelHandler(t)
	catalog := []model.CatalogModel{{ID: "claude-3-haiku-20240307", DisplayName: "Claude 3 Haiku"}}
	mockModelSvc.On("List", mock.Anything).Return(catalog).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	rr := httptest.NewRecorder()
	handler.HandleListModels(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []model.CatalogModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, catalog, got)
}

func TestModelHandler_HandleGetSettings(t *testing.T) {
	t.Run("Signed in", func(t *testing.T) {
		// ARRANGE
		handler, mockModelSvc, mockSettingsSvc := setupModelHandler(t)
		mockSettingsSvc.On("Load", mock.Anything, testUser).
			Return(model.ModelSettings{EnabledModels: []string{"m1", "m2"}, SelectedModel: strPtr("m2")}).Once()
		mockModelSvc.On("DisplayName", "m1").Return("Model One")
		mockModelSvc.On("DisplayName", "m2").Return("Model Two")

		// ACT
		req := signedIn(httptest.NewRequest(http.MethodGet, "/api/v1/settings/models", nil), testUser)
		rr := httptest.NewRecorder()
		handler.HandleGetSettings(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"enabled_models": ["m1","m2"],
			"selected_model": "m2",
			"selected_model_name": "Model Two",
			"models": [
				{"id":"m1","display_name":"Model One"},
				{"id":"m2","display_name":"Model Two"}
			]
		}`, rr.Body.String())
	})

	t.Run("Anonymous gets defaults", func(t *testing.T) {
		// ARRANGE
		handler, _, mockSettingsSvc := setupModelHandler(t)
		mockSettingsSvc.On("Load", mock.Anything, (*model.User)(nil)).
			Return(model.ModelSettings{EnabledModels: []string{}}).Once()

		// ACT
		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings/models", nil)
		rr := httptest.NewRecorder()
		handler.HandleGetSettings(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"enabled_models":[],"selected_model":null,"selected_model_name":null,"models":[]}`, rr.Body.String())
	})
}

func TestModelHandler_HandleSetEnabledModels(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(m *mocks.MockModelService, s *mocks.MockSettingsService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"enabled_models":["m1"]}`,
			setupMocks: func(m *mocks.MockModelService, s *mocks.MockSettingsService) {
				s.On("SetEnabledModels", mock.Anything, testUser, []string{"m1"}).
					Return(model.ModelSettings{EnabledModels: []string{"m1"}, SelectedModel: strPtr("m1")}, nil).Once()
				m.On("DisplayName", "m1").Return("Model One")
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing list",
			body:           `{}`,
			setupMocks:     func(m *mocks.MockModelService, s *mocks.MockSettingsService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown model",
			body: `{"enabled_models":["nope"]}`,
			setupMocks: func(m *mocks.MockModelService, s *mocks.MockSettingsService) {
				s.On("SetEnabledModels", mock.Anything, testUser, []string{"nope"}).
					Return(model.ModelSettings{}, fmt.Errorf("%w: unknown model %q", app_errors.ErrValidation, "nope")).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockModelSvc, mockSettingsSvc := setupModelHandler(t)
			tc.setupMocks(mockModelSvc, mockSettingsSvc)

			req := signedIn(httptest.NewRequest(http.MethodPut, "/api/v1/settings/models/enabled", strings.NewReader(tc.body)), testUser)
			rr := httptest.NewRecorder()
			handler.HandleSetEnabledModels(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestModelHandler_HandleSetSelectedModel(t *testing.T) {
	t.Run("Null clears the selection", func(t *testing.T) {
		// ARRANGE
		handler, _, mockSettingsSvc := setupModelHandler(t)
		mockSettingsSvc.On("SetSelectedModel", mock.Anything, testUser, (*string)(nil)).
			Return(model.ModelSettings{EnabledModels: []string{}}, nil).Once()

		// ACT
		body := strings.NewReader(`{"selected_model":null}`)
		req := signedIn(httptest.NewRequest(http.MethodPut, "/api/v1/settings/models/selected", body), testUser)
		rr := httptest.NewRecorder()
		handler.HandleSetSelectedModel(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"selected_model":null`)
	})

	t.Run("Model not enabled", func(t *testing.T) {
		// ARRANGE
		handler, _, mockSettingsSvc := setupModelHandler(t)
		mockSettingsSvc.On("SetSelectedModel", mock.Anything, testUser, strPtr("m9")).
			Return(model.ModelSettings{}, fmt.Errorf("%w: model %q is not enabled", app_errors.ErrValidation, "m9")).Once()

		// ACT
		body := strings.NewReader(`{"selected_model":"m9"}`)
		req := signedIn(httptest.NewRequest(http.MethodPut, "/api/v1/settings/models/selected", body), testUser)
		rr := httptest.NewRecorder()
		handler.HandleSetSelectedModel(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "not enabled")
	})
}

func TestModelHandler_ValidationMessages(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		expectedBody string
	}{
		{
			name:         "Missing list names the JSON field",
			body:         `{}`,
			expectedBody: "enabled_models failed on 'required'",
		},
		{
			name:         "Oversized id names the element",
			body:         `{"enabled_models":["m1","` + strings.Repeat("x", 201) + `"]}`,
			expectedBody: "enabled_models[1] failed on 'max'",
		},
		{
			name:         "Blank id",
			body:         `{"enabled_models":[""]}`,
			expectedBody: "enabled_models[0] failed on 'required'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// ARRANGE
			handler, _, _ := setupModelHandler(t)

			// ACT
			req := signedIn(httptest.NewRequest(http.MethodPut, "/api/v1/settings/models/enabled", strings.NewReader(tc.body)), testUser)
			rr := httptest.NewRecorder()
			handler.HandleSetEnabledModels(rr, req)

			// ASSERT
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tc.expectedBody)
		})
	}
}
