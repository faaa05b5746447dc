package api

import (
	"net/http"

	"chatbuilder/backend/internal/auth"
	"chatbuilder/backend/internal/interfaces"
	"chatbuilder/backend/internal/model"
)

// ModelHandler handles the model catalog and the per-user model settings.
type ModelHandler struct {
	models   interfaces.ModelService
	settings interfaces.SettingsService
}

func NewModelHandler(models interfaces.ModelService, settings interfaces.SettingsService) *ModelHandler {
	return &ModelHandler{models: models, settings: settings}
}

// HandleListModels godoc
// @Summary      List models
// @Description  Gets the catalog of models that can be enabled.
// @Tags         models
// @Produce      json
// @Success      200  {array}  model.CatalogModel
// @Router       /models [get]
func (h *ModelHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.models.List(r.Context()))
}

// HandleGetSettings godoc
// @Summary      Get model settings
// @Description  Returns the caller's enabled and selected models. Anonymous callers and storage failures get the defaults.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  api.ModelSettingsResponse
// @Router       /settings/models [get]
func (h *ModelHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.settings.Load(r.Context(), auth.UserFromContext(r.Context()))
	respondWithJSON(w, http.StatusOK, h.settingsResponse(settings))
}

// HandleSetEnabledModels godoc
// @Summary      Set enabled models
// @Description  Replaces the enabled list. A selection that is no longer enabled moves to the first enabled model.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      api.SetEnabledModelsRequest  true  "Enabled model ids"
// @Success      200      {object}  api.ModelSettingsResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /settings/models/enabled [put]
func (h *ModelHandler) HandleSetEnabledModels(w http.ResponseWriter, r *http.Request) {
	var req SetEnabledModelsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	settings, err := h.settings.SetEnabledModels(r.Context(), auth.UserFromContext(r.Context()), req.EnabledModels)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.settingsResponse(settings))
}

// HandleSetSelectedModel godoc
// @Summary      Set selected model
// @Description  Selects one of the enabled models. null clears the selection.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      api.SetSelectedModelRequest  true  "Selected model id"
// @Success      200      {object}  api.ModelSettingsResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /settings/models/selected [put]
func (h *ModelHandler) HandleSetSelectedModel(w http.ResponseWriter, r *http.Request) {
	var req SetSelectedModelRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	settings, err := h.settings.SetSelectedModel(r.Context(), auth.UserFromContext(r.Context()), req.SelectedModel)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.settingsResponse(settings))
}

func (h *ModelHandler) settingsResponse(settings model.ModelSettings) ModelSettingsResponse {
	resp := ModelSettingsResponse{
		EnabledModels: settings.EnabledModels,
		SelectedModel: settings.SelectedModel,
		Models:        make([]model.CatalogModel, 0, len(settings.EnabledModels)),
	}
	if resp.EnabledModels == nil {
		resp.EnabledModels = []string{}
	}
	for _, id := range resp.EnabledModels {
		resp.Models = append(resp.Models, model.CatalogModel{ID: id, DisplayName: h.models.DisplayName(id)})
	}
	if settings.SelectedModel != nil {
		name := h.models.DisplayName(*settings.SelectedModel)
		resp.SelectedModelName = &name
	}
	return resp
}
