package service

import (
	"context"
	"slices"

	"chatbuilder/backend/internal/model"
)

var builtinModels = []model.CatalogModel{
	{ID: "claude-3-opus-20240229", DisplayName: "Claude 3 Opus"},
	{ID: "claude-3-5-sonnet-20240620", DisplayName: "Claude 3.5 Sonnet"},
	{ID: "claude-3-haiku-20240307", DisplayName: "Claude 3 Haiku"},
}

// ModelService exposes the catalog of models users may enable.
type ModelService struct {
	catalog []model.CatalogModel
}

// NewModelService builds the catalog from the built-in models plus any extra
// ids (typically the configured defaults). Unknown extras are listed under
// their id.
func NewModelService(extraIDs ...string) *ModelService {
	catalog := slices.Clone(builtinModels)
	for _, id := range extraIDs {
		if id == "" || containsModel(catalog, id) {
			continue
		}
		catalog = append(catalog, model.CatalogModel{ID: id, DisplayName: id})
	}
	return &ModelService{catalog: catalog}
}

// List returns the catalog in display order.
func (s *ModelService) List(_ context.Context) []model.CatalogModel {
	return slices.Clone(s.catalog)
}

// Has reports whether id is in the catalog.
func (s *ModelService) Has(id string) bool {
	return containsModel(s.catalog, id)
}

// DisplayName returns the human readable name for id, falling back to the id.
func (s *ModelService) DisplayName(id string) string {
	for _, m := range s.catalog {
		if m.ID == id {
			return m.DisplayName
		}
	}
	return id
}

func containsModel(catalog []model.CatalogModel, id string) bool {
	return slices.ContainsFunc(catalog, func(m model.CatalogModel) bool { return m.ID == id })
}
