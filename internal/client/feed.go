package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"screenhub.org/internal/notify"
)

// feedPageSize is the fixed page size Load requests from the server.
const feedPageSize = 100

// Feed mirrors the server's notification panel locally. Every mutation runs
// under one mutex, so overlapping calls from UI events serialize instead of
// interleaving their read-modify-write cycles against the mirror.
type Feed struct {
	client *Client

	mu      sync.Mutex
	items   []notify.Notification
	asOf    time.Time
	loading bool
}

// NewFeed creates an empty feed bound to the given API client.
func NewFeed(c *Client) *Feed {
	return &Feed{client: c}
}

type listResponse struct {
	Items []notify.Notification `json:"items"`
	AsOf  time.Time             `json:"as_of"`
}

// Items returns a copy of the local mirror, newest first.
func (f *Feed) Items() []notify.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]notify.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Unread counts locally mirrored unread notifications.
func (f *Feed) Unread() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, item := range f.items {
		if !item.IsRead {
			n++
		}
	}
	return n
}

// Loading reports whether a load is in flight.
func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Load replaces the mirror with the server's current set.
func (f *Feed) Load(ctx context.Context) error {
	f.mu.Lock()
	f.loading = true
	f.mu.Unlock()

	var payload listResponse
	path := fmt.Sprintf("/v1/notifications?limit=%d", feedPageSize)
	_, err := f.client.doJSON(ctx, http.MethodGet, path, nil, &payload, nil, http.StatusOK)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		return err
	}
	f.items = payload.Items
	f.asOf = payload.AsOf
	return nil
}

// MarkRead flags one notification read on the server, then patches the local
// mirror from the authoritative record in the response.
func (f *Feed) MarkRead(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var updated notify.Notification
	path := fmt.Sprintf("/v1/notifications/%d", id)
	_, err := f.client.doJSON(ctx, http.MethodPatch, path, map[string]bool{"is_read": true}, &updated, nil, http.StatusOK)
	if err != nil {
		return err
	}
	for i := range f.items {
		if f.items[i].ID == updated.ID {
			f.items[i] = updated
			break
		}
	}
	return nil
}

// MarkAllRead asks the server to flip every unread notification in one
// request and replaces the whole mirror with the returned set. One round
// trip, no per-item fan-out, no partially updated mirror.
func (f *Feed) MarkAllRead(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var payload listResponse
	_, err := f.client.doJSON(ctx, http.MethodPost, "/v1/notifications/read-all", nil, &payload, nil, http.StatusOK)
	if err != nil {
		return err
	}
	f.items = payload.Items
	f.asOf = payload.AsOf
	return nil
}

// Remove deletes a notification server-side and drops it from the mirror.
func (f *Feed) Remove(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := fmt.Sprintf("/v1/notifications/%d", id)
	_, err := f.client.doJSON(ctx, http.MethodDelete, path, nil, nil, nil, http.StatusNoContent)
	if err != nil {
		return err
	}
	kept := f.items[:0]
	for _, item := range f.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}
