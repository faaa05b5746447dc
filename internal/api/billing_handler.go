package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chatbuilder/backend/internal/auth"
	"chatbuilder/backend/internal/interfaces"
)

// BillingHandler exposes the subscription state and plan changes of the
// signed-in user. Calls are made with the user's own access token.
type BillingHandler struct {
	billing interfaces.BillingService
}

func NewBillingHandler(billing interfaces.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

// GetSubscription godoc
// @Summary      Subscription details
// @Description  Summarizes the active subscription. Billing failures leave fields empty instead of failing.
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.SubscriptionDetails
// @Failure      401  {object}  api.ErrorResponse
// @Router       /billing/subscription [get]
func (h *BillingHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	token := auth.FromContext(r.Context()).AccessToken()
	respondWithJSON(w, http.StatusOK, h.billing.GetSubscriptionDetails(r.Context(), token))
}

// CancelSubscription godoc
// @Summary      Cancel at period end
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        subscriptionID  path      string  true  "Subscription ID"
// @Success      200             {object}  api.StatusResponse
// @Failure      400             {object}  api.ErrorResponse
// @Failure      502             {object}  api.ErrorResponse
// @Router       /billing/subscription/{subscriptionID}/cancel [post]
func (h *BillingHandler) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	token := auth.FromContext(r.Context()).AccessToken()
	if err := h.billing.CancelSubscription(r.Context(), token, chi.URLParam(r, "subscriptionID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// ReactivateSubscription godoc
// @Summary      Undo a pending cancellation
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        subscriptionID  path      string  true  "Subscription ID"
// @Success      200             {object}  api.StatusResponse
// @Failure      400             {object}  api.ErrorResponse
// @Failure      502             {object}  api.ErrorResponse
// @Router       /billing/subscription/{subscriptionID}/reactivate [post]
func (h *BillingHandler) ReactivateSubscription(w http.ResponseWriter, r *http.Request) {
	token := auth.FromContext(r.Context()).AccessToken()
	if err := h.billing.ReactivateSubscription(r.Context(), token, chi.URLParam(r, "subscriptionID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// CreateCheckout godoc
// @Summary      Start a checkout
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      api.CheckoutRequest  true  "Price"
// @Success      200      {object}  api.CheckoutResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	token := auth.FromContext(r.Context()).AccessToken()
	url, err := h.billing.CreateCheckout(r.Context(), token, req.PriceID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CheckoutResponse{URL: url})
}
