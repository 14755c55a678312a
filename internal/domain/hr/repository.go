package hr

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	Create(ctx context.Context, employee *EmployeeProfile) error
	Update(ctx context.Context, employee *EmployeeProfile) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*EmployeeProfile, error)
	FindAll(ctx context.Context, orgID uuid.UUID, filter EmployeeFilter) ([]*EmployeeProfile, int64, error)
	ExistsByNumber(ctx context.Context, orgID uuid.UUID, employeeNumber string) (bool, error)
	CountByStatus(ctx context.Context, orgID uuid.UUID, status EmployeeStatus) (int64, error)
}

// EmployeeFilter contains filter options for querying employees
type EmployeeFilter struct {
	Status   *EmployeeStatus
	Keyword  string
	Page     int
	PageSize int
}

// Offset returns the offset for pagination
func (f EmployeeFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f EmployeeFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}

// CompensationRepository defines the interface for compensation persistence
type CompensationRepository interface {
	Create(ctx context.Context, record *CompensationRecord) error
	Update(ctx context.Context, record *CompensationRecord) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*CompensationRecord, error)
	FindByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]*CompensationRecord, error)
	FindCurrentByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*CompensationRecord, error)
	// FindAllCurrent returns the current record for every employee in the org
	FindAllCurrent(ctx context.Context, orgID uuid.UUID) ([]*CompensationRecord, error)
	// DemoteCurrent clears the current flag on the employee's current record, if any
	DemoteCurrent(ctx context.Context, orgID, employeeID uuid.UUID, endDate time.Time) error
}

// TimeEntryRepository defines the interface for time entry persistence
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *TimeEntry) error
	Update(ctx context.Context, entry *TimeEntry) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*TimeEntry, error)
	FindAll(ctx context.Context, orgID uuid.UUID, filter TimeEntryFilter) ([]*TimeEntry, int64, error)
	// FindClosedInRange returns entries with clock-in inside [start, end]
	// and a derived total; open entries are excluded.
	FindClosedInRange(ctx context.Context, orgID, employeeID uuid.UUID, start, end time.Time) ([]*TimeEntry, error)
	// FindOpenByEmployee returns the employee's open entry, if any
	FindOpenByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*TimeEntry, error)
}

// TimeEntryFilter contains filter options for querying time entries
type TimeEntryFilter struct {
	EmployeeID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

// Offset returns the offset for pagination
func (f TimeEntryFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f TimeEntryFilter) Limit() int {
	if f.PageSize <= 0 {
		return 50
	}
	if f.PageSize > 200 {
		return 200
	}
	return f.PageSize
}
