// Package pg implements the registry and notification stores on PostgreSQL.
package pg

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"screenhub.org/internal/registry"
)

// Store wraps a shared connection pool.
type Store struct {
	db *sql.DB
}

var _ registry.Store = (*Store)(nil)

// Open connects to PostgreSQL with pool defaults tuned for this service.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return &Store{db: db}, nil
}

// NewStore wraps an existing pool (used by tests with sqlmock).
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Users(context.Context) registry.UserStore           { return &userStore{db: s.db} }
func (s *Store) Companies(context.Context) registry.CompanyStore    { return &companyStore{db: s.db} }
func (s *Store) Employees(context.Context) registry.EmployeeStore   { return &employeeStore{db: s.db} }
func (s *Store) Tests(context.Context) registry.TestStore           { return &testStore{db: s.db} }
func (s *Store) Screenings(context.Context) registry.ScreeningStore { return &screeningStore{db: s.db} }
func (s *Store) Documents(context.Context) registry.DocumentStore   { return &documentStore{db: s.db} }

// Notifications returns the notification store sharing the same pool.
func (s *Store) Notifications() *NotificationStore {
	return &NotificationStore{db: s.db}
}
