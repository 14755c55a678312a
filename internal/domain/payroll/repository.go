package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PayPeriodRepository defines the interface for pay period persistence
type PayPeriodRepository interface {
	Create(ctx context.Context, period *PayPeriod) error
	Update(ctx context.Context, period *PayPeriod) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*PayPeriod, error)
	FindAll(ctx context.Context, orgID uuid.UUID, filter PayPeriodFilter) ([]*PayPeriod, int64, error)
	// FindCurrent returns the open period containing the given date, if any
	FindCurrent(ctx context.Context, orgID uuid.UUID, at time.Time) (*PayPeriod, error)
}

// PayPeriodFilter contains filter options for querying pay periods
type PayPeriodFilter struct {
	PeriodType *PeriodType
	IsClosed   *bool
	Page       int
	PageSize   int
}

// Offset returns the offset for pagination
func (f PayPeriodFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f PayPeriodFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}

// PayRunRepository defines the interface for pay run persistence
type PayRunRepository interface {
	Create(ctx context.Context, run *PayRun) error
	Update(ctx context.Context, run *PayRun) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*PayRun, error)
	FindAll(ctx context.Context, orgID uuid.UUID, filter PayRunFilter) ([]*PayRun, int64, error)
	CountByPeriod(ctx context.Context, orgID, payPeriodID uuid.UUID) (int64, error)
	CountByStatuses(ctx context.Context, orgID uuid.UUID, statuses []PayRunStatus, since time.Time) (int64, error)
}

// PayRunFilter contains filter options for querying pay runs
type PayRunFilter struct {
	PayPeriodID *uuid.UUID
	Status      *PayRunStatus
	Page        int
	PageSize    int
}

// Offset returns the offset for pagination
func (f PayRunFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f PayRunFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}

// PayStubRepository defines the interface for pay stub persistence
type PayStubRepository interface {
	// Create inserts a stub together with its withholding and
	// deduction rows.
	Create(ctx context.Context, stub *PayStub) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*PayStub, error)
	FindByRun(ctx context.Context, orgID, payRunID uuid.UUID) ([]*PayStub, error)
	FindByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]*PayStub, error)
	FindAll(ctx context.Context, orgID uuid.UUID, filter PayStubFilter) ([]*PayStub, int64, error)
	// FindYearToDate returns stubs created since yearStart for the
	// employee, excluding the given run.
	FindYearToDate(ctx context.Context, orgID, employeeID uuid.UUID, yearStart time.Time, excludeRunID uuid.UUID) ([]*PayStub, error)
	// SumYearToDate aggregates gross/taxes/net over the same window
	SumYearToDate(ctx context.Context, orgID uuid.UUID, since time.Time) (YTDTotals, error)
	// DeleteByRunAndEmployee removes the stub and its child rows for
	// one (run, employee) pair, if present.
	DeleteByRunAndEmployee(ctx context.Context, orgID, payRunID, employeeID uuid.UUID) error
	// LoadLines populates the stub's withholding and deduction rows
	LoadLines(ctx context.Context, stub *PayStub) error
}

// PayStubFilter contains filter options for querying pay stubs
type PayStubFilter struct {
	PayRunID   *uuid.UUID
	EmployeeID *uuid.UUID
	Page       int
	PageSize   int
}

// Offset returns the offset for pagination
func (f PayStubFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f PayStubFilter) Limit() int {
	if f.PageSize <= 0 {
		return 50
	}
	if f.PageSize > 200 {
		return 200
	}
	return f.PageSize
}
