package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	app_errors "chatbuilder/backend/internal/errors"
	"chatbuilder/backend/internal/model"
	"chatbuilder/backend/internal/repository"
)

// SettingsService hands out per-user model settings. Reads never fail: a user
// without a stored profile, or a storage error, gets the defaults.
type SettingsService struct {
	repo     repository.ProfileRepository
	models   *ModelService
	defaults model.ModelSettings
}

func NewSettingsService(repo repository.ProfileRepository, models *ModelService, defaults model.ModelSettings) *SettingsService {
	return &SettingsService{
		repo:     repo,
		models:   models,
		defaults: defaults.Normalize(),
	}
}

// Load returns the user's settings with the selection repaired so it is
// always nil or one of the enabled models.
func (s *SettingsService) Load(ctx context.Context, user *model.User) model.ModelSettings {
	if user == nil {
		return s.defaults.Normalize()
	}

	stored, err := s.repo.GetProfile(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Warn("Could not load model settings, using defaults", "user_id", user.ID, "error", err)
		}
		return s.defaults.Normalize()
	}
	return stored.Normalize()
}

// SetEnabledModels replaces the enabled list. When the current selection is
// no longer enabled it moves to the first enabled model, or nil.
func (s *SettingsService) SetEnabledModels(ctx context.Context, user *model.User, ids []string) (model.ModelSettings, error) {
	if user == nil {
		return model.ModelSettings{}, fmt.Errorf("%w: sign in to change model settings", app_errors.ErrPermission)
	}

	enabled := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(enabled, id) {
			continue
		}
		if !s.models.Has(id) {
			return model.ModelSettings{}, fmt.Errorf("%w: unknown model %q", app_errors.ErrValidation, id)
		}
		enabled = append(enabled, id)
	}

	current := s.Load(ctx, user)
	next := model.ModelSettings{EnabledModels: enabled, SelectedModel: current.SelectedModel}.Normalize()

	if err := s.repo.UpsertProfile(ctx, user.ID, next); err != nil {
		return model.ModelSettings{}, fmt.Errorf("%w: could not save model settings: %v", app_errors.ErrInternal, err)
	}
	slog.Info("Updated enabled models", "user_id", user.ID, "enabled", enabled, "selected", next.Selected())
	return next, nil
}

// SetSelectedModel stores the selection. Any non-nil id must be one of the
// enabled models. A nil id is stored as is; like every read, the returned
// settings are repaired, so nil only survives when nothing is enabled.
func (s *SettingsService) SetSelectedModel(ctx context.Context, user *model.User, id *string) (model.ModelSettings, error) {
	if user == nil {
		return model.ModelSettings{}, fmt.Errorf("%w: sign in to change model settings", app_errors.ErrPermission)
	}

	current := s.Load(ctx, user)
	if id != nil && !slices.Contains(current.EnabledModels, *id) {
		return model.ModelSettings{}, fmt.Errorf("%w: model %q is not enabled", app_errors.ErrValidation, *id)
	}

	next := model.ModelSettings{EnabledModels: current.EnabledModels}
	if id != nil {
		selected := *id
		next.SelectedModel = &selected
	}

	err := s.repo.UpdateSelectedModel(ctx, user.ID, next.SelectedModel)
	if errors.Is(err, repository.ErrNotFound) {
		// First write for this user: persist the defaults alongside the pick.
		err = s.repo.UpsertProfile(ctx, user.ID, next)
	}
	if err != nil {
		return model.ModelSettings{}, fmt.Errorf("%w: could not save selected model: %v", app_errors.ErrInternal, err)
	}
	slog.Info("Updated selected model", "user_id", user.ID, "selected", next.Selected())
	return next.Normalize(), nil
}
