package registry

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("registry: not found")
	ErrAlreadyExists = errors.New("registry: already exists")
	ErrInvalidInput  = errors.New("registry: invalid input")
)

// Store describes persistence operations required by the directory handlers.
type Store interface {
	Users(ctx context.Context) UserStore
	Companies(ctx context.Context) CompanyStore
	Employees(ctx context.Context) EmployeeStore
	Tests(ctx context.Context) TestStore
	Screenings(ctx context.Context) ScreeningStore
	Documents(ctx context.Context) DocumentStore
}

// UserStore manages staff accounts.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	Find(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// CompanyStore manages client companies.
type CompanyStore interface {
	Create(ctx context.Context, c *Company) error
	Find(ctx context.Context, id int64) (*Company, error)
	List(ctx context.Context) ([]*Company, error)
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, id int64) error
}

// EmployeeStore manages workers.
type EmployeeStore interface {
	Create(ctx context.Context, e *Employee) error
	Find(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id int64) error
}

// TestStore manages the health test catalog.
type TestStore interface {
	Create(ctx context.Context, t *HealthTest) error
	Find(ctx context.Context, id int64) (*HealthTest, error)
	List(ctx context.Context) ([]*HealthTest, error)
	Update(ctx context.Context, t *HealthTest) error
	Delete(ctx context.Context, id int64) error
}

// ScreeningStore manages screenings.
type ScreeningStore interface {
	Create(ctx context.Context, s *Screening) error
	Find(ctx context.Context, id int64) (*Screening, error)
	List(ctx context.Context) ([]*Screening, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*Screening, error)
	Update(ctx context.Context, s *Screening) error
	Delete(ctx context.Context, id int64) error
}

// DocumentStore manages document metadata.
type DocumentStore interface {
	Create(ctx context.Context, d *Document) error
	Find(ctx context.Context, id int64) (*Document, error)
	List(ctx context.Context) ([]*Document, error)
	Delete(ctx context.Context, id int64) error
}
