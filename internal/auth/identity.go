// Package auth resolves the caller of a request against the external auth
// service. Sign-in, sign-up and sign-out stay with that service; this package
// only verifies bearer tokens and carries the result on the request context.
package auth

import (
	"context"

	"chatbuilder/backend/internal/model"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// Identity is the caller of the current request. The zero value is anonymous.
type Identity struct {
	user  *model.User
	token string
}

func NewIdentity(user *model.User, accessToken string) Identity {
	return Identity{user: user, token: accessToken}
}

// CurrentUser returns the signed-in user, or nil.
func (i Identity) CurrentUser() *model.User {
	return i.user
}

func (i Identity) IsAuthenticated() bool {
	return i.user != nil
}

// AccessToken is the verified bearer token, forwarded to services that act on
// the user's behalf.
func (i Identity) AccessToken() string {
	if i.user == nil {
		return ""
	}
	return i.token
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// FromContext returns the identity stored by Middleware, or an anonymous one.
func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(ctxKeyIdentity).(Identity)
	return id
}

// UserFromContext is shorthand for FromContext(ctx).CurrentUser().
func UserFromContext(ctx context.Context) *model.User {
	return FromContext(ctx).CurrentUser()
}
