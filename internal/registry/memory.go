package registry

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// InMemory implements Store with in-process concurrency safety. It backs
// handler tests and dev mode without a database.
type InMemory struct {
	mu         sync.RWMutex
	seq        int64
	users      map[int64]User
	companies  map[int64]Company
	employees  map[int64]Employee
	tests      map[int64]HealthTest
	screenings map[int64]Screening
	documents  map[int64]Document
}

var _ Store = (*InMemory)(nil)

// NewInMemory creates an empty registry.
func NewInMemory() *InMemory {
	return &InMemory{
		users:      make(map[int64]User),
		companies:  make(map[int64]Company),
		employees:  make(map[int64]Employee),
		tests:      make(map[int64]HealthTest),
		screenings: make(map[int64]Screening),
		documents:  make(map[int64]Document),
	}
}

func (s *InMemory) Users(context.Context) UserStore           { return (*memUsers)(s) }
func (s *InMemory) Companies(context.Context) CompanyStore    { return (*memCompanies)(s) }
func (s *InMemory) Employees(context.Context) EmployeeStore   { return (*memEmployees)(s) }
func (s *InMemory) Tests(context.Context) TestStore           { return (*memTests)(s) }
func (s *InMemory) Screenings(context.Context) ScreeningStore { return (*memScreenings)(s) }
func (s *InMemory) Documents(context.Context) DocumentStore   { return (*memDocuments)(s) }

func (s *InMemory) nextID() int64 {
	s.seq++
	return s.seq
}

// Users ---------------------------------------------------------------------

type memUsers InMemory

func (s *memUsers) Create(ctx context.Context, u *User) error {
	if u == nil || strings.TrimSpace(u.Email) == "" {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range s.users {
		if existing.Email == email {
			return ErrAlreadyExists
		}
	}
	u.ID = (*InMemory)(s).nextID()
	u.Email = email
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = *u
	return nil
}

func (s *memUsers) Find(ctx context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *memUsers) FindByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memUsers) List(ctx context.Context) ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*User, 0, len(s.users))
	for _, u := range s.users {
		copied := u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Companies -----------------------------------------------------------------

type memCompanies InMemory

func (s *memCompanies) Create(ctx context.Context, c *Company) error {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = (*InMemory)(s).nextID()
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	s.companies[c.ID] = *c
	return nil
}

func (s *memCompanies) Find(ctx context.Context, id int64) (*Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *memCompanies) List(ctx context.Context) ([]*Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Company, 0, len(s.companies))
	for _, c := range s.companies {
		copied := c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memCompanies) Update(ctx context.Context, c *Company) error {
	if c == nil {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.companies[c.ID]
	if !ok {
		return ErrNotFound
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	s.companies[c.ID] = *c
	return nil
}

func (s *memCompanies) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[id]; !ok {
		return ErrNotFound
	}
	delete(s.companies, id)
	return nil
}

// Employees -----------------------------------------------------------------

type memEmployees InMemory

func (s *memEmployees) Create(ctx context.Context, e *Employee) error {
	if e == nil || strings.TrimSpace(e.FullName) == "" || e.CompanyID <= 0 {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[e.CompanyID]; !ok {
		return ErrNotFound
	}
	e.ID = (*InMemory)(s).nextID()
	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now
	s.employees[e.ID] = *e
	return nil
}

func (s *memEmployees) Find(ctx context.Context, id int64) (*Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *memEmployees) List(ctx context.Context) ([]*Employee, error) {
	return s.listWhere(func(Employee) bool { return true })
}

func (s *memEmployees) ListByCompany(ctx context.Context, companyID int64) ([]*Employee, error) {
	return s.listWhere(func(e Employee) bool { return e.CompanyID == companyID })
}

func (s *memEmployees) listWhere(keep func(Employee) bool) ([]*Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Employee
	for _, e := range s.employees {
		if keep(e) {
			copied := e
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memEmployees) Update(ctx context.Context, e *Employee) error {
	if e == nil {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.employees[e.ID]
	if !ok {
		return ErrNotFound
	}
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	s.employees[e.ID] = *e
	return nil
}

func (s *memEmployees) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return ErrNotFound
	}
	delete(s.employees, id)
	return nil
}

// Tests ---------------------------------------------------------------------

type memTests InMemory

func (s *memTests) Create(ctx context.Context, t *HealthTest) error {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = (*InMemory)(s).nextID()
	now := time.Now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now
	s.tests[t.ID] = *t
	return nil
}

func (s *memTests) Find(ctx context.Context, id int64) (*HealthTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *memTests) List(ctx context.Context) ([]*HealthTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*HealthTest, 0, len(s.tests))
	for _, t := range s.tests {
		copied := t
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memTests) Update(ctx context.Context, t *HealthTest) error {
	if t == nil {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tests[t.ID]
	if !ok {
		return ErrNotFound
	}
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	s.tests[t.ID] = *t
	return nil
}

func (s *memTests) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tests[id]; !ok {
		return ErrNotFound
	}
	delete(s.tests, id)
	return nil
}

// Screenings ----------------------------------------------------------------

type memScreenings InMemory

func (s *memScreenings) Create(ctx context.Context, sc *Screening) error {
	if sc == nil || sc.EmployeeID <= 0 || sc.TestID <= 0 {
		return ErrInvalidInput
	}
	if sc.Status == "" {
		sc.Status = ScreeningScheduled
	}
	if !ValidScreeningStatus(sc.Status) {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[sc.EmployeeID]; !ok {
		return ErrNotFound
	}
	if _, ok := s.tests[sc.TestID]; !ok {
		return ErrNotFound
	}
	sc.ID = (*InMemory)(s).nextID()
	now := time.Now().UTC()
	sc.CreatedAt, sc.UpdatedAt = now, now
	s.screenings[sc.ID] = *sc
	return nil
}

func (s *memScreenings) Find(ctx context.Context, id int64) (*Screening, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.screenings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sc, nil
}

func (s *memScreenings) List(ctx context.Context) ([]*Screening, error) {
	return s.listWhere(func(Screening) bool { return true })
}

func (s *memScreenings) ListByEmployee(ctx context.Context, employeeID int64) ([]*Screening, error) {
	return s.listWhere(func(sc Screening) bool { return sc.EmployeeID == employeeID })
}

func (s *memScreenings) listWhere(keep func(Screening) bool) ([]*Screening, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Screening
	for _, sc := range s.screenings {
		if keep(sc) {
			copied := sc
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memScreenings) Update(ctx context.Context, sc *Screening) error {
	if sc == nil || !ValidScreeningStatus(sc.Status) {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.screenings[sc.ID]
	if !ok {
		return ErrNotFound
	}
	sc.CreatedAt = existing.CreatedAt
	sc.UpdatedAt = time.Now().UTC()
	s.screenings[sc.ID] = *sc
	return nil
}

func (s *memScreenings) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.screenings[id]; !ok {
		return ErrNotFound
	}
	delete(s.screenings, id)
	return nil
}

// Documents -----------------------------------------------------------------

type memDocuments InMemory

func (s *memDocuments) Create(ctx context.Context, d *Document) error {
	if d == nil || strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.StorageKey) == "" {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = (*InMemory)(s).nextID()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	s.documents[d.ID] = *d
	return nil
}

func (s *memDocuments) Find(ctx context.Context, id int64) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.documents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (s *memDocuments) List(ctx context.Context) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, 0, len(s.documents))
	for _, d := range s.documents {
		copied := d
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memDocuments) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok {
		return ErrNotFound
	}
	delete(s.documents, id)
	return nil
}
