package obs

import "testing"

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"":                            "/",
		"/metrics":                    "/metrics",
		"/v1/notifications":           "/v1/notifications",
		"/v1/notifications/42":        "/v1/notifications/:id",
		"/v1/notifications/read-all":  "/v1/notifications/read-all",
		"/v1/employees/7":             "/v1/employees/:id",
		"/v1/screenings/19?full=1":    "/v1/screenings/:id",
		"/v1/companies/3/extra":       "/v1/companies/3/extra",
		"/api/auth/me":                "/api/auth/me",
	}
	for input, expected := range cases {
		if got := CanonicalPath(input); got != expected {
			t.Fatalf("CanonicalPath(%q)=%q, want %q", input, got, expected)
		}
	}
}
