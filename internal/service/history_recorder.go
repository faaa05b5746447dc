package service

import (
	"context"
	"log/slog"
	"strings"

	"chatbuilder/backend/internal/model"
	"chatbuilder/backend/internal/repository"
)

const chatTitleLength = 50

// HistoryRecorder mirrors live session messages into the chat history. It is
// installed as the session observer. Storage failures are logged and never
// reach the session.
type HistoryRecorder struct {
	repo repository.ChatRepository
}

func NewHistoryRecorder(repo repository.ChatRepository) *HistoryRecorder {
	return &HistoryRecorder{repo: repo}
}

// MessageAppended stores msg. A user message also creates the history record
// when it does not exist yet, titled after that message.
func (r *HistoryRecorder) MessageAppended(ctx context.Context, chatID, userID string, msg model.Message) {
	logger := slog.With("chat_id", chatID, "message_id", msg.ID)

	if msg.Sender == model.SenderUser {
		chat := &model.Chat{
			ID:        chatID,
			UserID:    userID,
			Title:     chatTitle(msg.Content),
			CreatedAt: msg.CreatedAt,
			UpdatedAt: msg.CreatedAt,
		}
		if err := r.repo.CreateChat(ctx, chat); err != nil {
			logger.Error("Failed to create chat history record", "error", err)
			return
		}
	}

	if err := r.repo.AddMessage(ctx, chatID, &msg); err != nil {
		logger.Error("Failed to store chat message", "sender", msg.Sender, "error", err)
	}
}

func chatTitle(prompt string) string {
	return truncate(strings.Join(strings.Fields(prompt), " "), chatTitleLength)
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
