package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	app_errors "chatbuilder/backend/internal/errors"
	"chatbuilder/backend/internal/model"
)

// This file contains shared DTOs (Data Transfer Objects) for API requests and
// responses and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response, typically for operations
// like POST, PUT, DELETE that don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// UpdateTitleRequest is the DTO for the manual chat title update endpoint.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100" example:"Support bot"`
}

// OpenSessionRequest opens a chat view. InitialPrompt is the prompt typed on
// the landing page, if any.
type OpenSessionRequest struct {
	InitialPrompt string `json:"initial_prompt" validate:"max=32000" example:"Build a bot that answers billing questions"`
}

// SendMessageRequest submits a prompt. Blank content is not a validation
// error: the session rejects it without failing the request.
type SendMessageRequest struct {
	Content string `json:"content" validate:"max=32000" example:"Make it friendlier"`
}

// CancelResponse reports whether an in-flight completion was cancelled.
type CancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

// ChatListResponse is the sidebar history. Error is set, with an empty list,
// when history could not be fetched.
type ChatListResponse struct {
	Chats []model.ChatSummary `json:"chats"`
	Error string              `json:"error,omitempty"`
}

// SetEnabledModelsRequest replaces the user's enabled models.
type SetEnabledModelsRequest struct {
	EnabledModels []string `json:"enabled_models" validate:"required,max=50,dive,required,max=200"`
}

// SetSelectedModelRequest sets or clears (null) the selected model.
type SetSelectedModelRequest struct {
	SelectedModel *string `json:"selected_model" validate:"omitempty,min=1,max=200"`
}

// ModelSettingsResponse is the user's settings plus display names for the
// enabled models.
type ModelSettingsResponse struct {
	EnabledModels     []string             `json:"enabled_models"`
	SelectedModel     *string              `json:"selected_model"`
	SelectedModelName *string              `json:"selected_model_name"`
	Models            []model.CatalogModel `json:"models"`
}

// CheckoutRequest starts a checkout for a price.
type CheckoutRequest struct {
	PriceID string `json:"price_id" validate:"required,max=200" example:"price_123"`
}

// CheckoutResponse carries the hosted checkout URL the client redirects to.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps business-layer errors to HTTP status codes and formats a standard
// JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Validation messages are written for the client.
		message = err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = "A conflict occurred with the current state of the resource."
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "You do not have permission to perform this action."
	case errors.Is(err, app_errors.ErrUpstream):
		statusCode = http.StatusBadGateway
		message = err.Error()
	default:
		// Anything else is internal; details stay in the log.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeAndValidate reads a JSON body into payload and runs its validation
// tags. An empty body is treated as an empty object.
func decodeAndValidate(r *http.Request, payload interface{}) error {
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(payload); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation)
		}
	}
	return validateRequest(payload)
}
