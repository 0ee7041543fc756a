package pg

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"screenhub.org/internal/registry"
)

// Companies -----------------------------------------------------------------

type companyStore struct{ db *sql.DB }

func (s *companyStore) Create(ctx context.Context, c *registry.Company) error {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return registry.ErrInvalidInput
	}
	row := s.db.QueryRowContext(ctx, `
		insert into companies(name, contact_name, contact_email, phone)
		values ($1,$2,$3,$4)
		returning id, created_at, updated_at
	`, c.Name, c.ContactName, c.ContactEmail, c.Phone)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (s *companyStore) Find(ctx context.Context, id int64) (*registry.Company, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, name, contact_name, contact_email, phone, created_at, updated_at
		from companies where id=$1
	`, id)
	var c registry.Company
	err := row.Scan(&c.ID, &c.Name, &c.ContactName, &c.ContactEmail, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, registry.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *companyStore) List(ctx context.Context) ([]*registry.Company, error) {
	rows, err := s.db.QueryContext(ctx, `
		select id, name, contact_name, contact_email, phone, created_at, updated_at
		from companies order by id asc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*registry.Company
	for rows.Next() {
		var c registry.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.ContactName, &c.ContactEmail, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (s *companyStore) Update(ctx context.Context, c *registry.Company) error {
	if c == nil {
		return registry.ErrInvalidInput
	}
	res, err := s.db.ExecContext(ctx, `
		update companies
		set name=$2, contact_name=$3, contact_email=$4, phone=$5, updated_at=now()
		where id=$1
	`, c.ID, c.Name, c.ContactName, c.ContactEmail, c.Phone)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (s *companyStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from companies where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// Employees -----------------------------------------------------------------

type employeeStore struct{ db *sql.DB }

func (s *employeeStore) Create(ctx context.Context, e *registry.Employee) error {
	if e == nil || strings.TrimSpace(e.FullName) == "" || e.CompanyID <= 0 {
		return registry.ErrInvalidInput
	}
	row := s.db.QueryRowContext(ctx, `
		insert into employees(company_id, full_name, email, position, hired_at)
		values ($1,$2,$3,$4,$5)
		returning id, created_at, updated_at
	`, e.CompanyID, e.FullName, e.Email, e.Position, e.HiredAt)
	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (s *employeeStore) Find(ctx context.Context, id int64) (*registry.Employee, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, company_id, full_name, email, position, hired_at, created_at, updated_at
		from employees where id=$1
	`, id)
	var e registry.Employee
	err := row.Scan(&e.ID, &e.CompanyID, &e.FullName, &e.Email, &e.Position, &e.HiredAt, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, registry.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *employeeStore) List(ctx context.Context) ([]*registry.Employee, error) {
	return s.list(ctx, `
		select id, company_id, full_name, email, position, hired_at, created_at, updated_at
		from employees order by id asc
	`)
}

func (s *employeeStore) ListByCompany(ctx context.Context, companyID int64) ([]*registry.Employee, error) {
	return s.list(ctx, `
		select id, company_id, full_name, email, position, hired_at, created_at, updated_at
		from employees where company_id=$1 order by id asc
	`, companyID)
}

func (s *employeeStore) list(ctx context.Context, query string, args ...any) ([]*registry.Employee, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*registry.Employee
	for rows.Next() {
		var e registry.Employee
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.FullName, &e.Email, &e.Position, &e.HiredAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (s *employeeStore) Update(ctx context.Context, e *registry.Employee) error {
	if e == nil {
		return registry.ErrInvalidInput
	}
	res, err := s.db.ExecContext(ctx, `
		update employees
		set company_id=$2, full_name=$3, email=$4, position=$5, hired_at=$6, updated_at=now()
		where id=$1
	`, e.ID, e.CompanyID, e.FullName, e.Email, e.Position, e.HiredAt)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (s *employeeStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from employees where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// Health tests --------------------------------------------------------------

type testStore struct{ db *sql.DB }

func (s *testStore) Create(ctx context.Context, t *registry.HealthTest) error {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return registry.ErrInvalidInput
	}
	row := s.db.QueryRowContext(ctx, `
		insert into health_tests(name, description, validity_months)
		values ($1,$2,$3)
		returning id, created_at, updated_at
	`, t.Name, t.Description, t.ValidityMonths)
	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (s *testStore) Find(ctx context.Context, id int64) (*registry.HealthTest, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, name, description, validity_months, created_at, updated_at
		from health_tests where id=$1
	`, id)
	var t registry.HealthTest
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.ValidityMonths, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, registry.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *testStore) List(ctx context.Context) ([]*registry.HealthTest, error) {
	rows, err := s.db.QueryContext(ctx, `
		select id, name, description, validity_months, created_at, updated_at
		from health_tests order by id asc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*registry.HealthTest
	for rows.Next() {
		var t registry.HealthTest
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.ValidityMonths, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (s *testStore) Update(ctx context.Context, t *registry.HealthTest) error {
	if t == nil {
		return registry.ErrInvalidInput
	}
	res, err := s.db.ExecContext(ctx, `
		update health_tests
		set name=$2, description=$3, validity_months=$4, updated_at=now()
		where id=$1
	`, t.ID, t.Name, t.Description, t.ValidityMonths)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (s *testStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from health_tests where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// Screenings ----------------------------------------------------------------

type screeningStore struct{ db *sql.DB }

func (s *screeningStore) Create(ctx context.Context, sc *registry.Screening) error {
	if sc == nil || sc.EmployeeID <= 0 || sc.TestID <= 0 {
		return registry.ErrInvalidInput
	}
	if sc.Status == "" {
		sc.Status = registry.ScreeningScheduled
	}
	if !registry.ValidScreeningStatus(sc.Status) {
		return registry.ErrInvalidInput
	}
	row := s.db.QueryRowContext(ctx, `
		insert into screenings(employee_id, test_id, status, scheduled_for, completed_at, result, notes)
		values ($1,$2,$3,$4,$5,$6,$7)
		returning id, created_at, updated_at
	`, sc.EmployeeID, sc.TestID, sc.Status, sc.ScheduledFor, sc.CompletedAt, sc.Result, sc.Notes)
	return row.Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
}

func (s *screeningStore) Find(ctx context.Context, id int64) (*registry.Screening, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, employee_id, test_id, status, scheduled_for, completed_at, result, notes, created_at, updated_at
		from screenings where id=$1
	`, id)
	var sc registry.Screening
	err := row.Scan(&sc.ID, &sc.EmployeeID, &sc.TestID, &sc.Status, &sc.ScheduledFor, &sc.CompletedAt, &sc.Result, &sc.Notes, &sc.CreatedAt, &sc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, registry.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *screeningStore) List(ctx context.Context) ([]*registry.Screening, error) {
	return s.list(ctx, `
		select id, employee_id, test_id, status, scheduled_for, completed_at, result, notes, created_at, updated_at
		from screenings order by id asc
	`)
}

func (s *screeningStore) ListByEmployee(ctx context.Context, employeeID int64) ([]*registry.Screening, error) {
	return s.list(ctx, `
		select id, employee_id, test_id, status, scheduled_for, completed_at, result, notes, created_at, updated_at
		from screenings where employee_id=$1 order by id asc
	`, employeeID)
}

func (s *screeningStore) list(ctx context.Context, query string, args ...any) ([]*registry.Screening, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*registry.Screening
	for rows.Next() {
		var sc registry.Screening
		if err := rows.Scan(&sc.ID, &sc.EmployeeID, &sc.TestID, &sc.Status, &sc.ScheduledFor, &sc.CompletedAt, &sc.Result, &sc.Notes, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &sc)
	}
	return out, rows.Err()
}

func (s *screeningStore) Update(ctx context.Context, sc *registry.Screening) error {
	if sc == nil || !registry.ValidScreeningStatus(sc.Status) {
		return registry.ErrInvalidInput
	}
	res, err := s.db.ExecContext(ctx, `
		update screenings
		set status=$2, scheduled_for=$3, completed_at=$4, result=$5, notes=$6, updated_at=now()
		where id=$1
	`, sc.ID, sc.Status, sc.ScheduledFor, sc.CompletedAt, sc.Result, sc.Notes)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (s *screeningStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from screenings where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// Documents -----------------------------------------------------------------

type documentStore struct{ db *sql.DB }

func (s *documentStore) Create(ctx context.Context, d *registry.Document) error {
	if d == nil || strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.StorageKey) == "" {
		return registry.ErrInvalidInput
	}
	row := s.db.QueryRowContext(ctx, `
		insert into documents(employee_id, screening_id, name, storage_key, content_type, size_bytes)
		values ($1,$2,$3,$4,$5,$6)
		returning id, created_at
	`, d.EmployeeID, d.ScreeningID, d.Name, d.StorageKey, d.ContentType, d.SizeBytes)
	return row.Scan(&d.ID, &d.CreatedAt)
}

func (s *documentStore) Find(ctx context.Context, id int64) (*registry.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, employee_id, screening_id, name, storage_key, content_type, size_bytes, created_at
		from documents where id=$1
	`, id)
	var d registry.Document
	err := row.Scan(&d.ID, &d.EmployeeID, &d.ScreeningID, &d.Name, &d.StorageKey, &d.ContentType, &d.SizeBytes, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, registry.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *documentStore) List(ctx context.Context) ([]*registry.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		select id, employee_id, screening_id, name, storage_key, content_type, size_bytes, created_at
		from documents order by id asc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*registry.Document
	for rows.Next() {
		var d registry.Document
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.ScreeningID, &d.Name, &d.StorageKey, &d.ContentType, &d.SizeBytes, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (s *documentStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from documents where id=$1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected maps a zero-row update/delete to ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return registry.ErrNotFound
	}
	return nil
}
