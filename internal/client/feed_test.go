package client

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"screenhub.org/internal/notify"
)

// feedBackend is an in-process stand-in for the notifications API.
type feedBackend struct {
	mu    sync.Mutex
	items map[int64]notify.Notification
}

func newFeedBackend(count int) *feedBackend {
	b := &feedBackend{items: make(map[int64]notify.Notification)}
	for i := 1; i <= count; i++ {
		id := int64(i)
		b.items[id] = notify.Notification{
			ID:        id,
			Type:      "screening_scheduled",
			Title:     "Screening " + strconv.FormatInt(id, 10),
			CreatedAt: time.Now().UTC(),
		}
	}
	return b
}

func (b *feedBackend) snapshot() []notify.Notification {
	out := make([]notify.Notification, 0, len(b.items))
	for _, n := range b.items {
		out = append(out, n)
	}
	// newest first by id, matching the server
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].ID > out[i].ID {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

func (b *feedBackend) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch {
		case r.URL.Path == "/v1/notifications" && r.Method == http.MethodGet:
			if got := r.URL.Query().Get("limit"); got != "100" {
				t.Errorf("list limit = %q, want explicit 100", got)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"items": b.snapshot(),
				"as_of": time.Now().UTC(),
			})
		case r.URL.Path == "/v1/notifications/read-all" && r.Method == http.MethodPost:
			for id, n := range b.items {
				n.IsRead = true
				b.items[id] = n
			}
			json.NewEncoder(w).Encode(map[string]any{
				"items": b.snapshot(),
				"as_of": time.Now().UTC(),
			})
		case strings.HasPrefix(r.URL.Path, "/v1/notifications/") && r.Method == http.MethodPatch:
			id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/v1/notifications/"), 10, 64)
			n, ok := b.items[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			n.IsRead = true
			b.items[id] = n
			json.NewEncoder(w).Encode(n)
		case strings.HasPrefix(r.URL.Path, "/v1/notifications/") && r.Method == http.MethodDelete:
			id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/v1/notifications/"), 10, 64)
			if _, ok := b.items[id]; !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			delete(b.items, id)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newTestFeed(t *testing.T, backend *feedBackend) *Feed {
	t.Helper()
	return NewFeed(newStubServer(t, backend.handler(t)))
}

func TestFeedLoadMirrorsServer(t *testing.T) {
	f := newTestFeed(t, newFeedBackend(3))

	if err := f.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	items := f.Items()
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	if items[0].ID != 3 {
		t.Fatalf("expected newest first, got id %d", items[0].ID)
	}
	if f.Unread() != 3 {
		t.Fatalf("unread = %d, want 3", f.Unread())
	}
}

func TestFeedMarkReadPatchesOneItem(t *testing.T) {
	f := newTestFeed(t, newFeedBackend(3))
	if err := f.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := f.MarkRead(ctx, 2); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	for _, n := range f.Items() {
		if n.ID == 2 && !n.IsRead {
			t.Fatalf("target not marked in mirror")
		}
		if n.ID != 2 && n.IsRead {
			t.Fatalf("item %d mutated unexpectedly", n.ID)
		}
	}
}

func TestFeedMarkAllReadReplacesMirror(t *testing.T) {
	f := newTestFeed(t, newFeedBackend(4))
	if err := f.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := f.MarkAllRead(ctx); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if f.Unread() != 0 {
		t.Fatalf("unread = %d, want 0", f.Unread())
	}
	if len(f.Items()) != 4 {
		t.Fatalf("mirror lost items: %d", len(f.Items()))
	}
}

func TestFeedRemoveDropsItem(t *testing.T) {
	f := newTestFeed(t, newFeedBackend(2))
	if err := f.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := f.Remove(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items := f.Items()
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("unexpected mirror: %+v", items)
	}

	if err := f.Remove(ctx, 1); err == nil {
		t.Fatalf("expected error removing missing item")
	}
}

func TestFeedMutationsSerialize(t *testing.T) {
	f := newTestFeed(t, newFeedBackend(20))
	if err := f.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if err := f.MarkRead(ctx, id); err != nil {
				t.Errorf("mark read %d: %v", id, err)
			}
		}(int64(i))
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := f.MarkAllRead(ctx); err != nil {
			t.Errorf("mark all read: %v", err)
		}
	}()
	wg.Wait()

	if f.Unread() > 10 {
		t.Fatalf("mirror lost updates: %d unread", f.Unread())
	}
	if len(f.Items()) != 20 {
		t.Fatalf("mirror size = %d, want 20", len(f.Items()))
	}
}
