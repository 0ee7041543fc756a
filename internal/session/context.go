package session

import (
	"context"
	"net/http"
)

type userContextKey struct{}

// ContextWithUser attaches the authenticated identity to the context.
func ContextWithUser(ctx context.Context, user SessionUser) context.Context {
	return context.WithValue(ctx, userContextKey{}, &user)
}

// UserFromContext extracts the authenticated identity from the context.
func UserFromContext(ctx context.Context) (SessionUser, bool) {
	if ctx == nil {
		return SessionUser{}, false
	}
	v, ok := ctx.Value(userContextKey{}).(*SessionUser)
	if !ok || v == nil {
		return SessionUser{}, false
	}
	return *v, true
}

// RequireUser returns the caller identity or ErrUnauthorized. Protected
// handlers use it for authorization decisions beyond the coarse routing gate.
func RequireUser(ctx context.Context) (SessionUser, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return SessionUser{}, ErrUnauthorized
	}
	return user, nil
}

// FromRequest reads the session cookie from the request and decodes it.
// A missing or corrupt cookie yields nil, never an error.
func FromRequest(codec *Codec, r *http.Request) *SessionUser {
	if codec == nil || r == nil {
		return nil
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return codec.Decode(cookie.Value)
}
