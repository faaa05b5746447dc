package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	app_errors "chatbuilder/backend/internal/errors"
	"chatbuilder/backend/internal/model"
	"chatbuilder/backend/internal/repository"
	"chatbuilder/backend/internal/session"
)

// ChatService ties the live sessions to stored history and user settings.
type ChatService struct {
	repo     repository.ChatRepository
	sessions *session.Manager
	settings *SettingsService
}

// OpenResult is returned when a chat view is opened.
type OpenResult struct {
	Session model.SessionSnapshot `json:"session"`
	// Turn is set when opening fired the initial prompt.
	Turn    *session.Turn `json:"turn,omitempty"`
	Created bool          `json:"created"`
}

// SubmitResult reports what happened to a submitted message. Rejected
// submissions are not errors: Accepted is false and Reason says why.
type SubmitResult struct {
	Accepted bool                  `json:"accepted"`
	Reason   string                `json:"reason,omitempty"`
	Turn     *session.Turn         `json:"turn,omitempty"`
	Session  model.SessionSnapshot `json:"session"`
}

// DeleteResult tells the client where to go after a delete.
type DeleteResult struct {
	Redirect string `json:"redirect,omitempty"`
}

func NewChatService(repo repository.ChatRepository, sessions *session.Manager, settings *SettingsService) *ChatService {
	return &ChatService{repo: repo, sessions: sessions, settings: settings}
}

// ListChats returns the user's chats, most recently updated first.
func (s *ChatService) ListChats(ctx context.Context, user *model.User) ([]model.ChatSummary, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	chats, err := s.repo.GetChats(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list chats: %v", app_errors.ErrInternal, err)
	}
	summaries := make([]model.ChatSummary, 0, len(chats))
	for _, c := range chats {
		summaries = append(summaries, model.ChatSummary{ID: c.ID, Title: c.Title, UpdatedAt: c.UpdatedAt})
	}
	return summaries, nil
}

// GetFullChat retrieves a chat's metadata and all its messages.
func (s *ChatService) GetFullChat(ctx context.Context, user *model.User, chatID string) (*model.FullChat, error) {
	chat, err := s.ownedChat(ctx, user, chatID)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.GetMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not get messages: %v", app_errors.ErrInternal, err)
	}
	return &model.FullChat{Chat: *chat, Messages: messages}, nil
}

// UpdateChatTitle handles the logic for manually updating a chat's title.
func (s *ChatService) UpdateChatTitle(ctx context.Context, user *model.User, chatID, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	if _, err := s.ownedChat(ctx, user, chatID); err != nil {
		return err
	}
	if err := s.repo.UpdateChatTitle(ctx, chatID, newTitle); err != nil {
		return fmt.Errorf("%w: could not update title: %v", app_errors.ErrInternal, err)
	}
	slog.Info("Updated chat title", "chat_id", chatID)
	return nil
}

// DeleteChat removes the chat from history and closes its live session.
// When the caller is viewing the deleted chat the result carries a redirect.
func (s *ChatService) DeleteChat(ctx context.Context, user *model.User, chatID, viewingChatID string) (*DeleteResult, error) {
	_, err := s.ownedChat(ctx, user, chatID)
	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		// A chat that never received a message has a session but no record.
		if _, liveErr := s.sessions.Get(chatID, user.ID); liveErr != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := s.repo.DeleteChat(ctx, chatID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: could not delete chat: %v", app_errors.ErrInternal, err)
		}
	}

	s.sessions.Close(chatID)
	slog.Info("Deleted chat", "chat_id", chatID, "user_id", user.ID)

	result := &DeleteResult{}
	if viewingChatID == chatID {
		result.Redirect = "/"
	}
	return result, nil
}

// OpenChat opens or reuses the chat's live session, applies the user's model
// settings and fires the initial prompt when one is pending. It blocks until
// that first turn resolves.
func (s *ChatService) OpenChat(ctx context.Context, user *model.User, chatID, initialPrompt string) (*OpenResult, error) {
	sess, created, err := s.openSession(ctx, user, chatID, initialPrompt)
	if err != nil {
		return nil, err
	}
	sess.ApplySettings(s.settings.Load(ctx, user))
	turn := sess.ConsumeInitialPrompt(ctx)

	return &OpenResult{Session: sess.Snapshot(), Turn: turn, Created: created}, nil
}

// SendMessage submits content to the chat's session and waits for the reply.
func (s *ChatService) SendMessage(ctx context.Context, user *model.User, chatID, content string) (*SubmitResult, error) {
	sess, _, err := s.openSession(ctx, user, chatID, "")
	if err != nil {
		return nil, err
	}
	sess.ApplySettings(s.settings.Load(ctx, user))

	turn, err := sess.Submit(ctx, content)
	if err != nil {
		if session.IsRejection(err) {
			return &SubmitResult{Accepted: false, Reason: rejectionReason(err), Session: sess.Snapshot()}, nil
		}
		return nil, err
	}
	return &SubmitResult{Accepted: true, Turn: turn, Session: sess.Snapshot()}, nil
}

// CancelResponse aborts the chat's in-flight completion. It reports false
// when nothing was in flight.
func (s *ChatService) CancelResponse(_ context.Context, user *model.User, chatID string) (bool, error) {
	if err := requireUser(user); err != nil {
		return false, err
	}
	sess, err := s.sessions.Get(chatID, user.ID)
	if err != nil {
		return false, err
	}
	return sess.Cancel(), nil
}

// GetSession returns a snapshot of the chat's live session.
func (s *ChatService) GetSession(_ context.Context, user *model.User, chatID string) (model.SessionSnapshot, error) {
	if err := requireUser(user); err != nil {
		return model.SessionSnapshot{}, err
	}
	sess, err := s.sessions.Get(chatID, user.ID)
	if err != nil {
		return model.SessionSnapshot{}, err
	}
	return sess.Snapshot(), nil
}

// CloseChat discards the live session. Stored history is kept.
func (s *ChatService) CloseChat(_ context.Context, user *model.User, chatID string) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if _, err := s.sessions.Get(chatID, user.ID); err != nil {
		return err
	}
	s.sessions.Close(chatID)
	return nil
}

// openSession returns the live session for chatID. A new session is seeded
// with the stored messages of the chat, if any.
func (s *ChatService) openSession(ctx context.Context, user *model.User, chatID, initialPrompt string) (*session.Session, bool, error) {
	if err := requireUser(user); err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(chatID) == "" {
		return nil, false, fmt.Errorf("%w: chat id is required", app_errors.ErrValidation)
	}

	live, err := s.sessions.Get(chatID, user.ID)
	if err == nil {
		return live, false, nil
	}
	if !errors.Is(err, app_errors.ErrNotFound) {
		return nil, false, err
	}

	history, err := s.storedMessages(ctx, user, chatID)
	if err != nil {
		return nil, false, err
	}

	sess, created, err := s.sessions.Open(chatID, user.ID, initialPrompt)
	if err != nil {
		return nil, false, err
	}
	if created && sess.Restore(history) {
		slog.Info("Restored chat session from history", "chat_id", chatID, "messages", len(history))
	}
	return sess, created, nil
}

// storedMessages loads the history of a chat the user owns. A chat without a
// record has no history; a history read failure degrades to none.
func (s *ChatService) storedMessages(ctx context.Context, user *model.User, chatID string) ([]model.Message, error) {
	_, err := s.ownedChat(ctx, user, chatID)
	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		return nil, nil
	case errors.Is(err, app_errors.ErrPermission):
		return nil, err
	case err != nil:
		slog.Warn("Could not check stored chat, opening without history", "chat_id", chatID, "error", err)
		return nil, nil
	}

	messages, err := s.repo.GetMessages(ctx, chatID)
	if err != nil {
		slog.Warn("Could not load stored messages, opening without history", "chat_id", chatID, "error", err)
		return nil, nil
	}
	return messages, nil
}

func (s *ChatService) ownedChat(ctx context.Context, user *model.User, chatID string) (*model.Chat, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	chat, err := s.repo.GetChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return nil, fmt.Errorf("%w: could not get chat: %v", app_errors.ErrInternal, err)
	}
	if chat.UserID != user.ID {
		return nil, fmt.Errorf("%w: chat %s belongs to another user", app_errors.ErrPermission, chatID)
	}
	return chat, nil
}

func requireUser(user *model.User) error {
	if user == nil {
		return fmt.Errorf("%w: sign in to use chats", app_errors.ErrPermission)
	}
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, session.ErrEmptyPrompt):
		return "prompt is empty"
	case errors.Is(err, session.ErrNoModelSelected):
		return "no model selected"
	case errors.Is(err, session.ErrResponding):
		return "a response is already in progress"
	default:
		return err.Error()
	}
}
