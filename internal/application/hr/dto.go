package hr

import (
	"time"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEmployeeInput contains input for creating an employee profile
type CreateEmployeeInput struct {
	EmployeeNumber string     `json:"employee_number" binding:"required,min=1,max=50"`
	FirstName      string     `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string     `json:"last_name" binding:"required,min=1,max=100"`
	JobTitle       string     `json:"job_title" binding:"max=200"`
	HireDate       time.Time  `json:"hire_date" binding:"required"`
	UserID         *uuid.UUID `json:"user_id"`
}

// UpdateEmployeeInput contains input for updating an employee profile.
// Nil fields are left unchanged.
type UpdateEmployeeInput struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	JobTitle  *string `json:"job_title" binding:"omitempty,max=200"`
	Status    *string `json:"status" binding:"omitempty,oneof=active inactive terminated"`
}

// ListEmployeesInput contains filters for listing employees
type ListEmployeesInput struct {
	Status   string `form:"status" binding:"omitempty,oneof=active inactive terminated"`
	Keyword  string `form:"keyword"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// EmployeeResult is the employee payload returned to callers
type EmployeeResult struct {
	ID             uuid.UUID  `json:"id"`
	EmployeeNumber string     `json:"employee_number"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	FullName       string     `json:"full_name"`
	JobTitle       string     `json:"job_title"`
	Status         string     `json:"status"`
	HireDate       time.Time  `json:"hire_date"`
	TerminatedAt   *time.Time `json:"terminated_at,omitempty"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// EmployeeListResult is a paginated employee list
type EmployeeListResult struct {
	Items    []EmployeeResult `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateCompensationInput contains input for a new compensation record
type CreateCompensationInput struct {
	PayType       string          `json:"pay_type" binding:"required,oneof=hourly salary"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	Salary        decimal.Decimal `json:"salary"`
	PerDiem       decimal.Decimal `json:"per_diem"`
	EffectiveDate time.Time       `json:"effective_date" binding:"required"`
	Reason        string          `json:"reason" binding:"max=500"`
}

// EndCompensationInput contains input for closing out a compensation record
type EndCompensationInput struct {
	EndDate time.Time `json:"end_date" binding:"required"`
}

// CompensationResult is the compensation payload returned to callers
type CompensationResult struct {
	ID            uuid.UUID       `json:"id"`
	EmployeeID    uuid.UUID       `json:"employee_id"`
	PayType       string          `json:"pay_type"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	Salary        decimal.Decimal `json:"salary"`
	PerDiem       decimal.Decimal `json:"per_diem"`
	EffectiveDate time.Time       `json:"effective_date"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	IsCurrent     bool            `json:"is_current"`
	Reason        string          `json:"reason,omitempty"`
}

// ClockInInput contains input for clocking in
type ClockInInput struct {
	EmployeeID uuid.UUID  `json:"employee_id" binding:"required"`
	ClockIn    *time.Time `json:"clock_in"`
	Notes      string     `json:"notes" binding:"max=1000"`
}

// ClockOutInput contains input for clocking out
type ClockOutInput struct {
	ClockOut     *time.Time `json:"clock_out"`
	BreakMinutes *int       `json:"break_minutes" binding:"omitempty,min=0"`
}

// CreateTimeEntryInput contains input for a manually recorded entry
type CreateTimeEntryInput struct {
	EmployeeID   uuid.UUID `json:"employee_id" binding:"required"`
	ClockIn      time.Time `json:"clock_in" binding:"required"`
	ClockOut     time.Time `json:"clock_out" binding:"required"`
	BreakMinutes int       `json:"break_minutes" binding:"min=0"`
	Notes        string    `json:"notes" binding:"max=1000"`
}

// UpdateTimeEntryInput contains input for editing a closed entry
type UpdateTimeEntryInput struct {
	ClockIn      *time.Time `json:"clock_in"`
	ClockOut     *time.Time `json:"clock_out"`
	BreakMinutes *int       `json:"break_minutes" binding:"omitempty,min=0"`
	Notes        *string    `json:"notes" binding:"omitempty,max=1000"`
}

// ListTimeEntriesInput contains filters for listing time entries
type ListTimeEntriesInput struct {
	EmployeeID *uuid.UUID `form:"employee_id"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
}

// TimeEntryResult is the time entry payload returned to callers
type TimeEntryResult struct {
	ID           uuid.UUID        `json:"id"`
	EmployeeID   uuid.UUID        `json:"employee_id"`
	ClockIn      time.Time        `json:"clock_in"`
	ClockOut     *time.Time       `json:"clock_out,omitempty"`
	BreakMinutes int              `json:"break_minutes"`
	TotalHours   *decimal.Decimal `json:"total_hours,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// TimeEntryListResult is a paginated time entry list
type TimeEntryListResult struct {
	Items    []TimeEntryResult `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// EmployeeResultFromDomain converts a profile into its result payload
func EmployeeResultFromDomain(employee *hr.EmployeeProfile) EmployeeResult {
	return EmployeeResult{
		ID:             employee.ID,
		EmployeeNumber: employee.EmployeeNumber,
		FirstName:      employee.FirstName,
		LastName:       employee.LastName,
		FullName:       employee.FullName(),
		JobTitle:       employee.JobTitle,
		Status:         employee.Status.String(),
		HireDate:       employee.HireDate,
		TerminatedAt:   employee.TerminatedAt,
		UserID:         employee.UserID,
		CreatedAt:      employee.CreatedAt,
		UpdatedAt:      employee.UpdatedAt,
	}
}

// CompensationResultFromDomain converts a record into its result payload
func CompensationResultFromDomain(record *hr.CompensationRecord) CompensationResult {
	return CompensationResult{
		ID:            record.ID,
		EmployeeID:    record.EmployeeID,
		PayType:       record.PayType.String(),
		HourlyRate:    record.HourlyRate,
		OvertimeRate:  record.OvertimeRate,
		Salary:        record.Salary,
		PerDiem:       record.PerDiem,
		EffectiveDate: record.EffectiveDate,
		EndDate:       record.EndDate,
		IsCurrent:     record.IsCurrent,
		Reason:        record.Reason,
	}
}

func toTimeEntryResult(entry *hr.TimeEntry) TimeEntryResult {
	return TimeEntryResult{
		ID:           entry.ID,
		EmployeeID:   entry.EmployeeID,
		ClockIn:      entry.ClockIn,
		ClockOut:     entry.ClockOut,
		BreakMinutes: entry.BreakMinutes,
		TotalHours:   entry.TotalHours,
		Notes:        entry.Notes,
	}
}
