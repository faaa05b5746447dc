package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"chatbuilder/backend/internal/model"
)

// ErrInvalidToken is returned when the auth service rejects a token.
var ErrInvalidToken = errors.New("auth: invalid or expired token")

// Verifier resolves a bearer token to its user.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (*model.User, error)
}

// Client verifies tokens with the auth service's user endpoint.
type Client struct {
	http    *http.Client
	baseURL string
	anonKey string
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
	}
}

func (c *Client) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidToken
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("auth service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var user model.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("could not decode user: %w", err)
	}
	if user.ID == "" {
		return nil, ErrInvalidToken
	}
	return &user, nil
}

// Middleware puts the caller's Identity on the request context. Requests
// without a valid bearer token continue as anonymous.
func Middleware(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := v.VerifyToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, ErrInvalidToken) {
					slog.Debug("Rejected bearer token, continuing as anonymous", "path", r.URL.Path)
				} else {
					slog.Warn("Could not verify bearer token, continuing as anonymous", "path", r.URL.Path, "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithIdentity(r.Context(), NewIdentity(user, token))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser answers 401 for anonymous callers.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !FromContext(r.Context()).IsAuthenticated() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
