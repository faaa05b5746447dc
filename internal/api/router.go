package api

import (
	"net/http"
	"time"

	// Registers the generated API definitions with swaggo.
	_ "chatbuilder/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"chatbuilder/backend/internal/auth"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Chats   *ChatHandler
	Models  *ModelHandler
	Billing *BillingHandler
}

// NewRouter creates the chi router with all routes of the API.
func NewRouter(h Handlers, verifier auth.Verifier, limiter *RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		// Every request carries an identity, anonymous when no valid token is sent.
		r.Use(auth.Middleware(verifier))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Models ---
			r.Get("/models", h.Models.HandleListModels)
			r.Get("/settings/models", h.Models.HandleGetSettings)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireUser)

				r.Put("/settings/models/enabled", h.Models.HandleSetEnabledModels)
				r.Put("/settings/models/selected", h.Models.HandleSetSelectedModel)

				// --- Chats ---
				r.Get("/chats", h.Chats.GetChats)
				r.Get("/chats/{chatID}", h.Chats.GetChat)
				r.Put("/chats/{chatID}/title", h.Chats.UpdateChatTitle)
				r.Delete("/chats/{chatID}", h.Chats.HandleDeleteChat)
				r.Get("/chats/{chatID}/session", h.Chats.GetSession)
				r.Delete("/chats/{chatID}/session", h.Chats.CloseSession)
				r.Post("/chats/{chatID}/cancel", h.Chats.CancelResponse)

				// --- Billing ---
				r.Get("/billing/subscription", h.Billing.GetSubscription)
				r.Post("/billing/subscription/{subscriptionID}/cancel", h.Billing.CancelSubscription)
				r.Post("/billing/subscription/{subscriptionID}/reactivate", h.Billing.ReactivateSubscription)
				r.Post("/billing/checkout", h.Billing.CreateCheckout)
			})
		})

		// These wait for the completion, which has its own deadline, so the
		// request timeout is not applied.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser)
			r.Use(limiter.Middleware)

			r.Post("/chats/{chatID}/session", h.Chats.OpenSession)
			r.Post("/chats/{chatID}/messages", h.Chats.SendMessage)
		})
	})

	return r
}
