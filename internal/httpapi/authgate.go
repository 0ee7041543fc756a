package httpapi

import (
	"net/http"
	"net/url"
	"strings"

	"screenhub.org/internal/session"
)

// publicPrefixes are served without a session; anything below them is static
// or deliberately anonymous.
var publicPrefixes = []string{
	"/static/",
	"/assets/",
	"/api/public/",
}

// allowList holds exact paths (and their sub-paths) that must stay reachable
// for an unauthenticated client to be able to sign in at all.
var allowList = []string{
	"/login",
	"/api/auth",
}

// infraPaths are operational endpoints probed by infrastructure, never by a
// browser session.
var infraPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/metrics": true,
}

func isPublicPath(path string) bool {
	if infraPaths[path] {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	for _, p := range allowList {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// withSessionGate guards every route. Public paths pass through untouched.
// An authenticated client asking for /login is bounced home. A protected
// request without a valid session is redirected to /login carrying the
// original target, so the client lands back where it was after signing in.
func (a *API) withSessionGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := session.FromRequest(a.codec, r)

		if r.URL.Path == "/login" && user != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if user == nil {
			target := "/login"
			if r.URL.Path != "/login" {
				dest := r.URL.Path
				if r.URL.RawQuery != "" {
					dest += "?" + r.URL.RawQuery
				}
				target += "?redirect=" + url.QueryEscape(dest)
			}
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.ContextWithUser(r.Context(), *user)))
	})
}

// authorize enforces a minimum role on an already-gated request. It writes
// the error response itself and reports whether the handler may proceed.
func (a *API) authorize(w http.ResponseWriter, r *http.Request, min session.Role) (session.SessionUser, bool) {
	user, err := session.RequireUser(r.Context())
	if err != nil {
		w.Header().Set("WWW-Authenticate", `Bearer realm="`+serviceName+`"`)
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return session.SessionUser{}, false
	}
	if !user.Role.AtLeast(min) {
		writeError(w, r, http.StatusForbidden, "insufficient role")
		return session.SessionUser{}, false
	}
	return user, true
}
