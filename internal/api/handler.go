package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chatbuilder/backend/internal/auth"
	"chatbuilder/backend/internal/interfaces"
	"chatbuilder/backend/internal/model"
)

// ChatHandler serves chat history and live chat sessions.
type ChatHandler struct {
	chats interfaces.ChatService
}

func NewChatHandler(chats interfaces.ChatService) *ChatHandler {
	return &ChatHandler{chats: chats}
}

// GetChats godoc
// @Summary      List chat history
// @Description  Returns the caller's chats, most recently updated first. A storage failure yields an empty list with an error note and status 200.
// @Tags         chats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.ChatListResponse
// @Failure      401  {object}  api.ErrorResponse
// @Router       /chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chats.ListChats(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		slog.Error("Failed to list chats", "error", err)
		respondWithJSON(w, http.StatusOK, ChatListResponse{Chats: []model.ChatSummary{}, Error: "Could not load chat history."})
		return
	}
	respondWithJSON(w, http.StatusOK, ChatListResponse{Chats: chats})
}

// GetChat godoc
// @Summary      Get a stored chat
// @Tags         chats
// @Produce      json
// @Security     BearerAuth
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.FullChat
// @Failure      403     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /chats/{chatID} [get]
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	fullChat, err := h.chats.GetFullChat(r.Context(), auth.UserFromContext(r.Context()), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullChat)
}

// UpdateChatTitle godoc
// @Summary      Rename a chat
// @Tags         chats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chatID   path      string                  true  "Chat ID"
// @Param        request  body      api.UpdateTitleRequest  true  "New title"
// @Success      200      {object}  api.StatusResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /chats/{chatID}/title [put]
func (h *ChatHandler) UpdateChatTitle(w http.ResponseWriter, r *http.Request) {
	var req UpdateTitleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	chatID := chi.URLParam(r, "chatID")
	if err := h.chats.UpdateChatTitle(r.Context(), auth.UserFromContext(r.Context()), chatID, req.Title); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleDeleteChat godoc
// @Summary      Delete a chat
// @Description  Deletes the chat and closes its live session. Pass the chat currently on screen as `current`; when it is the deleted chat the response carries redirect "/".
// @Tags         chats
// @Produce      json
// @Security     BearerAuth
// @Param        chatID   path      string  true   "Chat ID"
// @Param        current  query     string  false  "Chat currently being viewed"
// @Success      200      {object}  service.DeleteResult
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /chats/{chatID} [delete]
func (h *ChatHandler) HandleDeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	viewing := r.URL.Query().Get("current")
	result, err := h.chats.DeleteChat(r.Context(), auth.UserFromContext(r.Context()), chatID, viewing)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// GetSession godoc
// @Summary      Snapshot of the live chat session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.SessionSnapshot
// @Failure      404     {object}  api.ErrorResponse
// @Router       /chats/{chatID}/session [get]
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	snapshot, err := h.chats.GetSession(r.Context(), auth.UserFromContext(r.Context()), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}

// OpenSession godoc
// @Summary      Open a chat view
// @Description  Opens or reuses the chat's live session. A pending initial prompt is sent once a model is selected; the call then waits for the reply.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chatID   path      string                  true   "Chat ID"
// @Param        request  body      api.OpenSessionRequest  false  "Initial prompt"
// @Success      200      {object}  service.OpenResult
// @Failure      403      {object}  api.ErrorResponse
// @Router       /chats/{chatID}/session [post]
func (h *ChatHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	chatID := chi.URLParam(r, "chatID")
	result, err := h.chats.OpenChat(r.Context(), auth.UserFromContext(r.Context()), chatID, req.InitialPrompt)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// CloseSession godoc
// @Summary      Close a chat view
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  api.StatusResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /chats/{chatID}/session [delete]
func (h *ChatHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	if err := h.chats.CloseChat(r.Context(), auth.UserFromContext(r.Context()), chatID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Appends the message and waits for the assistant reply. Blank prompts, a reply already in progress, or no selected model are answered with accepted=false and a reason.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chatID   path      string                  true  "Chat ID"
// @Param        request  body      api.SendMessageRequest  true  "Prompt"
// @Success      200      {object}  service.SubmitResult
// @Failure      403      {object}  api.ErrorResponse
// @Failure      429      {object}  api.ErrorResponse
// @Router       /chats/{chatID}/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	chatID := chi.URLParam(r, "chatID")
	result, err := h.chats.SendMessage(r.Context(), auth.UserFromContext(r.Context()), chatID, req.Content)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if !result.Accepted {
		slog.Info("Message not accepted", "chat_id", chatID, "reason", result.Reason)
	}
	respondWithJSON(w, http.StatusOK, result)
}

// CancelResponse godoc
// @Summary      Cancel the reply in progress
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  api.CancelResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /chats/{chatID}/cancel [post]
func (h *ChatHandler) CancelResponse(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	cancelled, err := h.chats.CancelResponse(r.Context(), auth.UserFromContext(r.Context()), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CancelResponse{Cancelled: cancelled})
}
