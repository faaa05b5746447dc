package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chatbuilder/backend/internal/model"
)

type sqliteProfileRepository struct {
	db *sql.DB
}

func NewSQLiteProfileRepository(db *sql.DB) ProfileRepository {
	return &sqliteProfileRepository{db: db}
}

func (r *sqliteProfileRepository) GetProfile(ctx context.Context, userID string) (*model.ModelSettings, error) {
	query := "SELECT enabled_models, selected_model FROM profiles WHERE user_id = ?"
	row := r.db.QueryRowContext(ctx, query, userID)

	var enabledJSON string
	var selected sql.NullString
	if err := row.Scan(&enabledJSON, &selected); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	settings := &model.ModelSettings{EnabledModels: []string{}}
	if err := json.Unmarshal([]byte(enabledJSON), &settings.EnabledModels); err != nil {
		return nil, fmt.Errorf("could not decode enabled models for user %s: %w", userID, err)
	}
	if selected.Valid {
		settings.SelectedModel = &selected.String
	}
	return settings, nil
}

func (r *sqliteProfileRepository) UpsertProfile(ctx context.Context, userID string, settings model.ModelSettings) error {
	enabled := settings.EnabledModels
	if enabled == nil {
		enabled = []string{}
	}
	enabledJSON, err := json.Marshal(enabled)
	if err != nil {
		return fmt.Errorf("could not encode enabled models: %w", err)
	}

	query := `
		INSERT INTO profiles (user_id, enabled_models, selected_model, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			enabled_models = excluded.enabled_models,
			selected_model = excluded.selected_model,
			updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query, userID, string(enabledJSON), nullString(settings.SelectedModel), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("could not upsert profile: %w", err)
	}
	return nil
}

func (r *sqliteProfileRepository) UpdateSelectedModel(ctx context.Context, userID string, selected *string) error {
	query := "UPDATE profiles SET selected_model = ?, updated_at = ? WHERE user_id = ?"
	res, err := r.db.ExecContext(ctx, query, nullString(selected), time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("could not update selected model: %w", err)
	}
	return requireAffected(res)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
