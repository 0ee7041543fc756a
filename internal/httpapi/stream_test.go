package httpapi

import (
	"bufio"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"screenhub.org/internal/notify"
)

func TestStreamDeliversPublishedNotifications(t *testing.T) {
	c, fx := newTestAPI(t)
	c.login("admin@example.com", "admin-pass")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/notifications/stream", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stream status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q", ct)
	}

	// wait for the subscription before publishing
	deadline := time.Now().Add(2 * time.Second)
	for fx.api.events.Subscribers() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	fx.api.events.Publish(notify.Notification{
		ID:    1,
		Type:  "screening_scheduled",
		Title: "Screening scheduled",
	})

	reader := bufio.NewReader(resp.Body)
	var sawEvent, sawData bool
	for !sawData {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("read stream: %v", err)
		}
		if strings.HasPrefix(line, "event: notification") {
			sawEvent = true
		}
		if strings.HasPrefix(line, "data: ") && strings.Contains(line, "screening_scheduled") {
			sawData = true
		}
	}
	if !sawEvent {
		t.Fatalf("no event line before data")
	}
}
