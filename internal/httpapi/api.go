// Package httpapi is the HTTP layer: the session gate in front of every
// route, the JSON handlers behind it, and the middleware stack around both.
package httpapi

import (
	"context"
	"database/sql"
	"net/http"

	"screenhub.org/internal/notify"
	"screenhub.org/internal/obs"
	"screenhub.org/internal/registry"
	"screenhub.org/internal/session"
)

const serviceName = "screenhub-api"

// ReadyProbe checks dependencies for the readiness endpoint.
type ReadyProbe struct {
	DB *sql.DB
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.DB == nil {
		return nil
	}
	return rp.DB.PingContext(ctx)
}

// API is the HTTP layer.
type API struct {
	mux           *http.ServeMux
	codec         *session.Codec
	registry      registry.Store
	notifications notify.Store
	events        *notify.Broadcaster
	readyProbe    ReadyProbe
	version       string
	cookieOpts    session.CookieOptions

	rateBurst  int
	ratePerSec int
}

// New wires the routes. The session gate and the rest of the middleware
// stack are applied in Handler.
func New(rp ReadyProbe, version string, codec *session.Codec, reg registry.Store, notes notify.Store, events *notify.Broadcaster) *API {
	a := &API{
		mux:           http.NewServeMux(),
		codec:         codec,
		registry:      reg,
		notifications: notes,
		events:        events,
		readyProbe:    rp,
		version:       version,
		rateBurst:     20,
		ratePerSec:    10,
	}

	// health/ready/info
	a.mux.HandleFunc("/healthz", a.Healthz)
	a.mux.HandleFunc("/readyz", a.Ready)
	a.mux.HandleFunc("/v1/info", a.Info)

	// Prometheus metrics
	a.mux.Handle("/metrics", obs.Handler())

	// session surface
	a.mux.HandleFunc("/login", a.LoginPage)
	a.mux.HandleFunc("/api/auth/login", a.handleLogin)
	a.mux.HandleFunc("/api/auth/logout", a.handleLogout)
	a.mux.HandleFunc("/api/auth/me", a.handleMe)

	// notifications
	a.mux.HandleFunc("/v1/notifications", a.handleNotificationsCollection)
	a.mux.HandleFunc("/v1/notifications/", a.handleNotificationResource)

	// directory
	a.mux.HandleFunc("/v1/companies", a.handleCompaniesCollection)
	a.mux.HandleFunc("/v1/companies/", a.handleCompanyResource)
	a.mux.HandleFunc("/v1/employees", a.handleEmployeesCollection)
	a.mux.HandleFunc("/v1/employees/", a.handleEmployeeResource)
	a.mux.HandleFunc("/v1/tests", a.handleTestsCollection)
	a.mux.HandleFunc("/v1/tests/", a.handleTestResource)
	a.mux.HandleFunc("/v1/screenings", a.handleScreeningsCollection)
	a.mux.HandleFunc("/v1/screenings/", a.handleScreeningResource)
	a.mux.HandleFunc("/v1/documents", a.handleDocumentsCollection)
	a.mux.HandleFunc("/v1/documents/", a.handleDocumentResource)

	// protected home
	a.mux.HandleFunc("/", a.Home)

	return a
}

// SetCookieOptions configures how session cookies are issued.
func (a *API) SetCookieOptions(opts session.CookieOptions) {
	a.cookieOpts = opts
}

// SetRateLimit overrides the default per-client rate limit.
func (a *API) SetRateLimit(burst, perSecond int) {
	if burst > 0 {
		a.rateBurst = burst
	}
	if perSecond > 0 {
		a.ratePerSec = perSecond
	}
}

// Handler returns the fully wrapped http.Handler for the server.
func (a *API) Handler() http.Handler {
	h := http.Handler(a.mux)
	h = a.withSessionGate(h)
	h = MaxBodyBytes(h, 1<<20)
	h = LoggingJSON(h)
	h = RateLimit(h, a.rateBurst, a.ratePerSec)
	h = RequestID(h)
	h = CORS(h)
	h = SecurityHeaders(h)
	return obs.Instrument(h)
}
