package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"screenhub.org/internal/audit"
	"screenhub.org/internal/notify"
	"screenhub.org/internal/session"
)

type notificationList struct {
	Items []notify.Notification `json:"items"`
	AsOf  time.Time             `json:"as_of"`
}

// handleNotificationsCollection serves GET /v1/notifications.
func (a *API) handleNotificationsCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	limit := notify.ClampLimit(int(parsePositiveInt(r.URL.Query().Get("limit"))))
	items, err := a.notifications.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []notify.Notification{}
	}
	writeJSON(w, http.StatusOK, notificationList{Items: items, AsOf: time.Now().UTC()})
}

type setReadRequest struct {
	IsRead bool `json:"is_read"`
}

// handleNotificationResource dispatches /v1/notifications/{id},
// /v1/notifications/read-all and /v1/notifications/stream.
func (a *API) handleNotificationResource(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/notifications/"), "/")
	switch rest {
	case "read-all":
		a.markAllNotificationsRead(w, r)
		return
	case "stream":
		a.streamNotifications(w, r)
		return
	}

	id := parsePositiveInt(rest)
	if id == 0 {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var req setReadRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		n, err := a.notifications.SetRead(r.Context(), id, req.IsRead)
		if err != nil {
			if errors.Is(err, notify.ErrNotFound) {
				writeError(w, r, http.StatusNotFound, "notification not found")
				return
			}
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, n)
	case http.MethodDelete:
		if _, ok := a.authorize(w, r, session.RoleUser); !ok {
			return
		}
		if err := a.notifications.Delete(r.Context(), id); err != nil {
			if errors.Is(err, notify.ErrNotFound) {
				writeError(w, r, http.StatusNotFound, "notification not found")
				return
			}
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		audit.LogEvent(r.Context(), "notification.deleted", map[string]any{"notification_id": id})
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodPatch, http.MethodDelete)
	}
}

// markAllNotificationsRead flips every unread record in one store operation
// and returns the authoritative set. The client replaces its mirror from the
// response instead of issuing one request per item.
func (a *API) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	items, err := a.notifications.MarkAllRead(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []notify.Notification{}
	}
	audit.LogEvent(r.Context(), "notification.read_all", map[string]any{"count": len(items)})
	writeJSON(w, http.StatusOK, notificationList{Items: items, AsOf: time.Now().UTC()})
}
