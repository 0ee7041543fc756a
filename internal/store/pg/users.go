package pg

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"screenhub.org/internal/registry"
)

type userStore struct{ db *sql.DB }

func (s *userStore) Create(ctx context.Context, u *registry.User) error {
	if u == nil || strings.TrimSpace(u.Email) == "" {
		return registry.ErrInvalidInput
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	row := s.db.QueryRowContext(ctx, `
		insert into users(full_name, email, password_hash, role, status)
		values ($1,$2,$3,$4,$5)
		returning id, created_at, updated_at
	`, u.FullName, u.Email, u.PasswordHash, u.Role, u.Status)
	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (s *userStore) Find(ctx context.Context, id int64) (*registry.User, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, full_name, email, password_hash, role, status, created_at, updated_at
		from users where id=$1
	`, id)
	return scanUser(row)
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*registry.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := s.db.QueryRowContext(ctx, `
		select id, full_name, email, password_hash, role, status, created_at, updated_at
		from users where email=$1
	`, email)
	return scanUser(row)
}

func (s *userStore) List(ctx context.Context) ([]*registry.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		select id, full_name, email, password_hash, role, status, created_at, updated_at
		from users order by id asc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*registry.User
	for rows.Next() {
		var u registry.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func scanUser(row *sql.Row) (*registry.User, error) {
	var u registry.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, registry.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
