package httpapi

import (
	"net/http"
	"testing"
)

func TestGateRedirectsAnonymousToLogin(t *testing.T) {
	c, _ := newTestAPI(t)

	resp := c.get("/dashboard", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login?redirect=%2Fdashboard" {
		t.Fatalf("location = %q", loc)
	}
}

func TestGatePreservesQueryInRedirect(t *testing.T) {
	c, _ := newTestAPI(t)

	resp := c.get("/v1/employees?company_id=3", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login?redirect=%2Fv1%2Femployees%3Fcompany_id%3D3" {
		t.Fatalf("location = %q", loc)
	}
}

func TestGateBouncesAuthenticatedFromLogin(t *testing.T) {
	c, _ := newTestAPI(t)
	c.login("admin@example.com", "admin-pass")

	resp := c.get("/login", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("location = %q, want /", loc)
	}
}

func TestGateServesLoginToAnonymous(t *testing.T) {
	c, _ := newTestAPI(t)

	resp := c.get("/login", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGateAdmitsSessionToProtectedRoute(t *testing.T) {
	c, _ := newTestAPI(t)
	c.login("admin@example.com", "admin-pass")

	resp := c.get("/", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGateIgnoresTamperedCookie(t *testing.T) {
	c, _ := newTestAPI(t)

	resp := c.do(http.MethodGet, "/", nil, map[string]string{
		"Cookie": "app_session=not-a-real-token",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login?redirect=%2F" {
		t.Fatalf("location = %q", loc)
	}
}

func TestGateAllowsAuthSurface(t *testing.T) {
	c, _ := newTestAPI(t)

	resp := c.get("/api/auth/me", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (reachable, not redirected)", resp.StatusCode)
	}
}

func TestGateAllowsPublicPrefix(t *testing.T) {
	c, _ := newTestAPI(t)

	// no handler registered below the public prefix, but the gate must not
	// redirect; the mux answers
	resp := c.get("/api/public/ping", nil)
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusFound {
		t.Fatalf("public prefix was redirected")
	}
}
