package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"screenhub.org/internal/notify"
)

func seedNotifications(t *testing.T, store *notify.InMemory, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		n := &notify.Notification{
			Type:  "screening_scheduled",
			Title: fmt.Sprintf("Screening %d", i+1),
		}
		if err := store.Create(context.Background(), n); err != nil {
			t.Fatalf("seed notification: %v", err)
		}
	}
}

func TestNotificationsList(t *testing.T) {
	c, fx := newTestAPI(t)
	seedNotifications(t, fx.notes, 3)
	c.login("admin@example.com", "admin-pass")

	list := decode[notificationList](t, c.get("/v1/notifications", nil))
	if len(list.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(list.Items))
	}
	if list.AsOf.IsZero() {
		t.Fatalf("as_of is zero")
	}
	// newest first
	if list.Items[0].ID < list.Items[1].ID {
		t.Fatalf("expected newest first: %d before %d", list.Items[0].ID, list.Items[1].ID)
	}
}

func TestMarkReadTouchesOnlyTarget(t *testing.T) {
	c, fx := newTestAPI(t)
	seedNotifications(t, fx.notes, 3)
	c.login("admin@example.com", "admin-pass")

	updated := decode[notify.Notification](t, c.patch("/v1/notifications/2", map[string]any{
		"is_read": true,
	}))
	if updated.ID != 2 || !updated.IsRead {
		t.Fatalf("unexpected update: %+v", updated)
	}

	list := decode[notificationList](t, c.get("/v1/notifications", nil))
	for _, n := range list.Items {
		if n.ID == 2 && !n.IsRead {
			t.Fatalf("target not marked read")
		}
		if n.ID != 2 && n.IsRead {
			t.Fatalf("notification %d marked read unexpectedly", n.ID)
		}
	}
}

func TestMarkReadUnknownIs404(t *testing.T) {
	c, _ := newTestAPI(t)
	c.login("admin@example.com", "admin-pass")

	resp := c.patch("/v1/notifications/99", map[string]any{"is_read": true})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestMarkAllReadIsOneOperation(t *testing.T) {
	c, fx := newTestAPI(t)
	seedNotifications(t, fx.notes, 5)
	c.login("admin@example.com", "admin-pass")

	list := decode[notificationList](t, c.post("/v1/notifications/read-all", nil))
	if len(list.Items) != 5 {
		t.Fatalf("items = %d, want 5", len(list.Items))
	}
	for _, n := range list.Items {
		if !n.IsRead {
			t.Fatalf("notification %d still unread in authoritative set", n.ID)
		}
	}

	// idempotent
	again := decode[notificationList](t, c.post("/v1/notifications/read-all", nil))
	if len(again.Items) != 5 {
		t.Fatalf("second call items = %d, want 5", len(again.Items))
	}
}

func TestRemoveNotification(t *testing.T) {
	c, fx := newTestAPI(t)
	seedNotifications(t, fx.notes, 2)
	c.login("admin@example.com", "admin-pass")

	resp := c.del("/v1/notifications/1")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()

	list := decode[notificationList](t, c.get("/v1/notifications", nil))
	if len(list.Items) != 1 || list.Items[0].ID != 2 {
		t.Fatalf("unexpected remaining items: %+v", list.Items)
	}

	resp = c.del("/v1/notifications/1")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("repeat delete status = %d, want 404", resp.StatusCode)
	}
}

func TestNotificationsLimitClamped(t *testing.T) {
	c, fx := newTestAPI(t)
	seedNotifications(t, fx.notes, 4)
	c.login("admin@example.com", "admin-pass")

	list := decode[notificationList](t, c.do(http.MethodGet, "/v1/notifications?limit=2", nil, nil))
	if len(list.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(list.Items))
	}
}
