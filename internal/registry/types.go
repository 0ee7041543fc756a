// Package registry holds the occupational-health domain records: the client
// companies, their employees, the health test catalog, scheduled screenings
// and attached documents, plus the staff accounts that log into the service.
package registry

import "time"

// User is a staff account that can authenticate against the service.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserStatusActive marks accounts allowed to log in.
const UserStatusActive = "active"

// Company is a client organization whose employees get screened.
type Company struct {
	ID           int64
	Name         string
	ContactName  string
	ContactEmail string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Employee is a worker registered under a company.
type Employee struct {
	ID        int64
	CompanyID int64
	FullName  string
	Email     string
	Position  string
	HiredAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HealthTest is a catalog entry describing one kind of examination.
type HealthTest struct {
	ID             int64
	Name           string
	Description    string
	ValidityMonths int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Screening statuses.
const (
	ScreeningScheduled = "scheduled"
	ScreeningCompleted = "completed"
	ScreeningCanceled  = "canceled"
	ScreeningExpired   = "expired"
)

// ValidScreeningStatus reports whether the status is one of the fixed values.
func ValidScreeningStatus(status string) bool {
	switch status {
	case ScreeningScheduled, ScreeningCompleted, ScreeningCanceled, ScreeningExpired:
		return true
	}
	return false
}

// Screening ties an employee to a health test at a point in time.
type Screening struct {
	ID           int64
	EmployeeID   int64
	TestID       int64
	Status       string
	ScheduledFor *time.Time
	CompletedAt  *time.Time
	Result       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Document is file metadata attached to an employee or screening. Blob
// storage itself lives elsewhere; the record carries only the storage key.
type Document struct {
	ID          int64
	EmployeeID  *int64
	ScreeningID *int64
	Name        string
	StorageKey  string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
