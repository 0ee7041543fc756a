package registry

import (
	"context"
	"errors"
	"testing"
)

func TestUsersCreateAndFindByEmail(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	u := &User{FullName: "Dana Ortiz", Email: "Dana@Acme.Test", Role: "admin", Status: UserStatusActive}
	if err := store.Users(ctx).Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected assigned id")
	}

	found, err := store.Users(ctx).FindByEmail(ctx, "dana@acme.test")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != u.ID {
		t.Fatalf("found id %d, want %d", found.ID, u.ID)
	}

	dup := &User{FullName: "Other", Email: "dana@acme.test", Role: "user", Status: UserStatusActive}
	if err := store.Users(ctx).Create(ctx, dup); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestEmployeesRequireCompany(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	e := &Employee{CompanyID: 99, FullName: "Lee Wong"}
	if err := store.Employees(ctx).Create(ctx, e); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing company, got %v", err)
	}

	c := &Company{Name: "Acme Mining"}
	if err := store.Companies(ctx).Create(ctx, c); err != nil {
		t.Fatalf("create company: %v", err)
	}
	e.CompanyID = c.ID
	if err := store.Employees(ctx).Create(ctx, e); err != nil {
		t.Fatalf("create employee: %v", err)
	}

	byCompany, err := store.Employees(ctx).ListByCompany(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListByCompany: %v", err)
	}
	if len(byCompany) != 1 || byCompany[0].ID != e.ID {
		t.Fatalf("unexpected employees: %+v", byCompany)
	}
}

func TestScreeningLifecycle(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	c := &Company{Name: "Acme Mining"}
	if err := store.Companies(ctx).Create(ctx, c); err != nil {
		t.Fatalf("create company: %v", err)
	}
	e := &Employee{CompanyID: c.ID, FullName: "Lee Wong"}
	if err := store.Employees(ctx).Create(ctx, e); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	ht := &HealthTest{Name: "Audiometry", ValidityMonths: 12}
	if err := store.Tests(ctx).Create(ctx, ht); err != nil {
		t.Fatalf("create test: %v", err)
	}

	sc := &Screening{EmployeeID: e.ID, TestID: ht.ID}
	if err := store.Screenings(ctx).Create(ctx, sc); err != nil {
		t.Fatalf("create screening: %v", err)
	}
	if sc.Status != ScreeningScheduled {
		t.Fatalf("expected default status scheduled, got %q", sc.Status)
	}

	sc.Status = "bogus"
	if err := store.Screenings(ctx).Update(ctx, sc); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	sc.Status = ScreeningCompleted
	sc.Result = "fit"
	if err := store.Screenings(ctx).Update(ctx, sc); err != nil {
		t.Fatalf("update screening: %v", err)
	}

	got, err := store.Screenings(ctx).Find(ctx, sc.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.Status != ScreeningCompleted || got.Result != "fit" {
		t.Fatalf("unexpected screening: %+v", got)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2-but-longer")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := VerifyPassword(hash, "hunter2-but-longer"); err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if err := VerifyPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}
