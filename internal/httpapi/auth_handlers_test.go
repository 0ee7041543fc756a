package httpapi

import (
	"net/http"
	"testing"

	"screenhub.org/internal/session"
)

func TestLoginIssuesSessionCookie(t *testing.T) {
	c, _ := newTestAPI(t)

	resp := c.post("/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "admin-pass",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var found *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == session.CookieName {
			found = ck
		}
	}
	if found == nil {
		t.Fatalf("no session cookie issued")
	}
	if !found.HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}
	if found.Path != "/" {
		t.Fatalf("cookie path = %q, want /", found.Path)
	}
	if found.MaxAge <= 0 {
		t.Fatalf("cookie max-age = %d, want positive", found.MaxAge)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	c, _ := newTestAPI(t)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "not-the-password"},
		{"unknown account", "ghost@example.com", "whatever"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := c.post("/api/auth/login", map[string]string{
				"email":    tc.email,
				"password": tc.password,
			})
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", resp.StatusCode)
			}
			body := decode[errorBody](t, resp)
			if body.Error != "invalid credentials" {
				t.Fatalf("error = %q, want uniform message", body.Error)
			}
		})
	}
}

func TestMeReflectsSession(t *testing.T) {
	c, _ := newTestAPI(t)

	resp := c.get("/api/auth/me", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous me status = %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()

	c.login("manager@example.com", "manager-pass")

	resp = c.get("/api/auth/me", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d, want 200", resp.StatusCode)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("cache-control = %q, want no-store", cc)
	}
	payload := decode[struct {
		User session.SessionUser `json:"user"`
	}](t, resp)
	if payload.User.Email != "manager@example.com" || payload.User.Role != session.RoleManager {
		t.Fatalf("unexpected identity: %+v", payload.User)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	c, _ := newTestAPI(t)
	c.login("admin@example.com", "admin-pass")

	resp := c.post("/api/auth/logout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = c.get("/api/auth/me", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout status = %d, want 401", resp.StatusCode)
	}
}
