package pg

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"screenhub.org/internal/notify"
)

// NotificationStore implements notify.Store on PostgreSQL.
type NotificationStore struct {
	db *sql.DB
}

var _ notify.Store = (*NotificationStore)(nil)

const notificationColumns = `id, type, title, message, screening_id, employee_id, is_read, created_at, scheduled_for`

func (s *NotificationStore) List(ctx context.Context, limit int) ([]notify.Notification, error) {
	limit = notify.ClampLimit(limit)
	rows, err := s.db.QueryContext(ctx, `
		select `+notificationColumns+`
		from notifications
		order by created_at desc, id desc
		limit $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

func (s *NotificationStore) Create(ctx context.Context, n *notify.Notification) error {
	if n == nil || strings.TrimSpace(n.Title) == "" {
		return notify.ErrInvalidInput
	}
	row := s.db.QueryRowContext(ctx, `
		insert into notifications(type, title, message, screening_id, employee_id, scheduled_for)
		values ($1,$2,$3,$4,$5,$6)
		returning id, is_read, created_at
	`, n.Type, n.Title, n.Message, n.ScreeningID, n.EmployeeID, n.ScheduledFor)
	return row.Scan(&n.ID, &n.IsRead, &n.CreatedAt)
}

func (s *NotificationStore) SetRead(ctx context.Context, id int64, read bool) (notify.Notification, error) {
	row := s.db.QueryRowContext(ctx, `
		update notifications set is_read=$2 where id=$1
		returning `+notificationColumns+`
	`, id, read)
	n, err := scanNotification(row)
	if errors.Is(err, sql.ErrNoRows) {
		return notify.Notification{}, notify.ErrNotFound
	}
	if err != nil {
		return notify.Notification{}, err
	}
	return n, nil
}

// MarkAllRead flips every unread row in one statement and returns the
// authoritative set afterwards, so callers never have to reconcile a
// partially applied bulk update.
func (s *NotificationStore) MarkAllRead(ctx context.Context) ([]notify.Notification, error) {
	if _, err := s.db.ExecContext(ctx, `update notifications set is_read=true where not is_read`); err != nil {
		return nil, err
	}
	return s.List(ctx, notify.DefaultListLimit)
}

func (s *NotificationStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from notifications where id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notify.ErrNotFound
	}
	return nil
}

func scanNotification(row *sql.Row) (notify.Notification, error) {
	var n notify.Notification
	err := row.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.ScreeningID, &n.EmployeeID, &n.IsRead, &n.CreatedAt, &n.ScheduledFor)
	return n, err
}

func scanNotifications(rows *sql.Rows) ([]notify.Notification, error) {
	var out []notify.Notification
	for rows.Next() {
		var n notify.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.ScreeningID, &n.EmployeeID, &n.IsRead, &n.CreatedAt, &n.ScheduledFor); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
