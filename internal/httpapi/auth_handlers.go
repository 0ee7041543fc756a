package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"screenhub.org/internal/audit"
	"screenhub.org/internal/registry"
	"screenhub.org/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin exchanges credentials for a signed session cookie. Failures are
// indistinguishable to the caller: wrong email, wrong password and disabled
// account all produce the same 401.
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	account, err := a.registry.Users(r.Context()).FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			audit.LogEvent(r.Context(), "auth.login_failed", map[string]any{"email": req.Email})
			writeError(w, r, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if account.Status != registry.UserStatusActive ||
		registry.VerifyPassword(account.PasswordHash, req.Password) != nil {
		audit.LogEvent(r.Context(), "auth.login_failed", map[string]any{"email": req.Email})
		writeError(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}

	role, ok := session.ParseRole(account.Role)
	if !ok {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	user := session.SessionUser{
		ID:       account.ID,
		FullName: account.FullName,
		Email:    account.Email,
		Role:     role,
	}
	token, err := a.codec.Encode(user)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	session.IssueCookie(w, token, a.codec.TTL(), a.cookieOpts)
	audit.LogEvent(r.Context(), "auth.login", map[string]any{
		"login_user_id": user.ID,
		"login_role":    string(user.Role),
	})
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// handleLogout clears the session cookie. It succeeds whether or not a
// session was present.
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	session.ClearCookie(w, a.cookieOpts)
	audit.LogEvent(r.Context(), "auth.logout", nil)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMe reports the identity behind the request's cookie. It sits on the
// public auth surface so a fresh client can probe its own state; the response
// must never be cached.
func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	user := session.FromRequest(a.codec, r)
	if user == nil {
		writeError(w, r, http.StatusUnauthorized, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
