package session

import (
	"net/http"
	"time"
)

// CookieName identifies the session cookie.
const CookieName = "app_session"

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Secure bool
	Domain string
}

// IssueCookie sets the session cookie on the response. The cookie is
// http-only, rooted at /, and expires with the token.
func IssueCookie(w http.ResponseWriter, token string, ttl time.Duration, opts CookieOptions) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Domain:   opts.Domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   opts.Secure,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Domain:   opts.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   opts.Secure,
	})
}
