package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chatbuilder/backend/internal/model"
)

type sqliteChatRepository struct {
	db *sql.DB
}

func NewSQLiteChatRepository(db *sql.DB) ChatRepository {
	return &sqliteChatRepository{db: db}
}

// CreateChat inserts the record unless it exists. Timestamps are written in
// UTC because the driver stores them as text and history order compares it.
func (r *sqliteChatRepository) CreateChat(ctx context.Context, chat *model.Chat) error {
	query := `
		INSERT INTO chats (id, user_id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, chat.ID, chat.UserID, chat.Title, chat.CreatedAt.UTC(), chat.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("could not insert chat: %w", err)
	}
	return nil
}

func (r *sqliteChatRepository) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	query := "SELECT id, user_id, title, created_at, updated_at FROM chats WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, chatID)

	var chat model.Chat
	err := row.Scan(&chat.ID, &chat.UserID, &chat.Title, &chat.CreatedAt, &chat.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &chat, nil
}

func (r *sqliteChatRepository) GetChats(ctx context.Context, userID string) ([]*model.Chat, error) {
	query := "SELECT id, user_id, title, created_at, updated_at FROM chats WHERE user_id = ? ORDER BY updated_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	chats := []*model.Chat{}
	for rows.Next() {
		var chat model.Chat
		if err := rows.Scan(&chat.ID, &chat.UserID, &chat.Title, &chat.CreatedAt, &chat.UpdatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, &chat)
	}
	return chats, rows.Err()
}

func (r *sqliteChatRepository) UpdateChatTitle(ctx context.Context, chatID, newTitle string) error {
	query := "UPDATE chats SET title = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, newTitle, time.Now().UTC(), chatID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DeleteChat removes the chat and its messages in one transaction.
func (r *sqliteChatRepository) DeleteChat(ctx context.Context, chatID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE chat_id = ?", chatID); err != nil {
		return fmt.Errorf("could not delete messages: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM chats WHERE id = ?", chatID)
	if err != nil {
		return fmt.Errorf("could not delete chat: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	return tx.Commit()
}

// AddMessage stores the message and bumps the chat's updated_at so the chat
// moves to the top of the history list.
func (r *sqliteChatRepository) AddMessage(ctx context.Context, chatID string, message *model.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createdAt := message.CreatedAt.UTC()
	insertMsgQuery := "INSERT INTO messages (id, chat_id, sender, content, created_at) VALUES (?, ?, ?, ?, ?)"
	_, err = tx.ExecContext(ctx, insertMsgQuery, message.ID, chatID, string(message.Sender), message.Content, createdAt)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}

	updateChatQuery := "UPDATE chats SET updated_at = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, updateChatQuery, createdAt, chatID); err != nil {
		return fmt.Errorf("could not update chat timestamp: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteChatRepository) GetMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	query := "SELECT id, sender, content, created_at FROM messages WHERE chat_id = ? ORDER BY created_at ASC, rowid ASC"
	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	messages := []model.Message{}
	for rows.Next() {
		var msg model.Message
		var sender string
		if err := rows.Scan(&msg.ID, &sender, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msg.Sender = model.Sender(sender)
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
