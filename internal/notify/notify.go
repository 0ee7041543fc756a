// Package notify holds the notification records backing the UI panel and the
// store contract their lifecycle operations run against.
package notify

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("notify: not found")
	ErrInvalidInput = errors.New("notify: invalid input")
)

const (
	// DefaultListLimit is the page size used when the caller does not ask
	// for one.
	DefaultListLimit = 100
	// MaxListLimit caps a caller-supplied page size.
	MaxListLimit = 200
)

// Notification is created by scheduling/event logic and afterwards mutated
// only through its read flag or deletion.
type Notification struct {
	ID           int64      `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	ScreeningID  *int64     `json:"screening_id"`
	EmployeeID   *int64     `json:"employee_id"`
	IsRead       bool       `json:"is_read"`
	CreatedAt    time.Time  `json:"created_at"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

// Store describes persistence operations for notifications.
type Store interface {
	// List returns up to limit notifications, newest first.
	List(ctx context.Context, limit int) ([]Notification, error)
	// Create persists a new notification and fills in its id and creation time.
	Create(ctx context.Context, n *Notification) error
	// SetRead updates the read flag of a single notification and returns the
	// updated record.
	SetRead(ctx context.Context, id int64, read bool) (Notification, error)
	// MarkAllRead flips every unread notification in one operation and
	// returns the authoritative updated set, newest first.
	MarkAllRead(ctx context.Context) ([]Notification, error)
	// Delete removes a notification by id.
	Delete(ctx context.Context, id int64) error
}

// ClampLimit normalizes a caller-supplied page size.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
