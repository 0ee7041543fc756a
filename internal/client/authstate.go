package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"screenhub.org/internal/session"
)

// Status is the authentication state the UI shell renders from.
type Status string

const (
	StatusIdle            Status = "idle"
	StatusLoading         Status = "loading"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

// AuthState tracks who is signed in on this client. The first Refresh moves
// it from idle through loading to a settled state; later refreshes keep the
// current identity visible until the server answers, so the UI never flickers
// back to an anonymous view while a check is in flight.
type AuthState struct {
	client *Client

	mu     sync.Mutex
	status Status
	user   *session.SessionUser
	err    error
	gen    uint64
}

// NewAuthState creates an idle state bound to the given API client.
func NewAuthState(c *Client) *AuthState {
	return &AuthState{client: c, status: StatusIdle}
}

// Status returns the current lifecycle phase.
func (s *AuthState) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// User returns the signed-in identity, if any.
func (s *AuthState) User() *session.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a settled identity is present.
func (s *AuthState) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == StatusAuthenticated && s.user != nil
}

// Err returns the last transport or decode failure seen by Refresh. A clean
// "not signed in" answer clears it.
func (s *AuthState) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type meResponse struct {
	User session.SessionUser `json:"user"`
}

// Refresh asks the server who the current cookie belongs to and settles the
// state from the answer. A 401 is a definitive "not signed in", never an
// error. Only a transport or parse failure records one; it still settles the
// state to unauthenticated so the shell can route to sign-in.
//
// While the probe is in flight the status reads loading, except when already
// authenticated: a revalidation keeps the settled identity visible so the UI
// does not flicker back to an anonymous view. If Login or Logout settles the
// state while the probe is out, the stale answer is discarded.
func (s *AuthState) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.status != StatusAuthenticated {
		s.status = StatusLoading
	}
	gen := s.gen
	s.mu.Unlock()

	header := http.Header{}
	header.Set("Cache-Control", "no-cache")
	header.Set("Pragma", "no-cache")

	var payload meResponse
	status, err := s.client.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &payload, header,
		http.StatusOK, http.StatusUnauthorized)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	switch {
	case err != nil:
		s.status = StatusUnauthenticated
		s.user = nil
		s.err = err
		return err
	case status == http.StatusUnauthorized:
		s.status = StatusUnauthenticated
		s.user = nil
		s.err = nil
		return nil
	default:
		if !payload.User.Valid() {
			err := errors.New("client: malformed identity in response")
			s.status = StatusUnauthenticated
			s.user = nil
			s.err = err
			return err
		}
		u := payload.User
		s.status = StatusAuthenticated
		s.user = &u
		s.err = nil
		return nil
	}
}

// Login exchanges credentials for a session cookie and settles the state to
// authenticated on success.
func (s *AuthState) Login(ctx context.Context, email, password string) error {
	var payload meResponse
	status, err := s.client.doJSON(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &payload, nil, http.StatusOK, http.StatusUnauthorized)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if err != nil {
		s.status = StatusUnauthenticated
		s.user = nil
		s.err = err
		return err
	}
	if status == http.StatusUnauthorized {
		s.status = StatusUnauthenticated
		s.user = nil
		s.err = nil
		return errors.New("client: invalid credentials")
	}
	u := payload.User
	s.status = StatusAuthenticated
	s.user = &u
	s.err = nil
	return nil
}

// Logout clears the session server-side and resets local state. The local
// reset happens even when the server call fails: a client that asked to sign
// out must never stay signed in, and a refresh still in flight when the reset
// lands must not resurrect the identity afterwards.
func (s *AuthState) Logout(ctx context.Context) error {
	_, err := s.client.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil, http.StatusOK)

	s.mu.Lock()
	s.gen++
	s.status = StatusUnauthenticated
	s.user = nil
	s.err = nil
	s.mu.Unlock()
	return err
}
