// Package client is the Go-side consumer of the HTTP API: a cookie-holding
// HTTP client, the authentication state machine the UI shell drives, and the
// local notification feed mirror.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// ErrUnexpectedStatus wraps responses outside a call's accepted set.
var ErrUnexpectedStatus = errors.New("client: unexpected status")

const defaultTimeout = 15 * time.Second

// Client talks to the API over HTTP, keeping session cookies between calls.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures Client construction.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport (useful for tests). A cookie
// jar is attached if the given client has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// New constructs a Client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("client: base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("client: parse base URL: %w", err)
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("client: cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	return c, nil
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out. The body is decoded only for 2xx statuses: an accepted
// non-2xx answer (a 401 from the identity probe, say) is a semantic outcome
// whose body may be empty or an error envelope, and the caller dispatches on
// the returned status alone. A response outside accept is drained and
// reported as ErrUnexpectedStatus.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any, header http.Header, accept ...int) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("client: marshal body: %w", err)
		}
		reader = strings.NewReader(string(data))
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("client: new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	accepted := false
	for _, code := range accept {
		if resp.StatusCode == code {
			accepted = true
			break
		}
	}
	if !accepted {
		return resp.StatusCode, fmt.Errorf("%w: %s %s -> %d", ErrUnexpectedStatus, method, path, resp.StatusCode)
	}
	decodable := resp.StatusCode >= 200 && resp.StatusCode < 300 &&
		resp.StatusCode != http.StatusNoContent
	if out != nil && decodable {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("client: decode %s %s: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}
