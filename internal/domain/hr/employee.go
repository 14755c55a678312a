package hr

import (
	"strings"
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeStatus represents the employment status of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusInactive   EmployeeStatus = "inactive"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

// IsValid returns true for a recognized status
func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusTerminated:
		return true
	}
	return false
}

// String returns the status as a string
func (s EmployeeStatus) String() string {
	return string(s)
}

// EmployeeProfile is the HR record for a worker. It may reference a
// login user but does not have to; field crews often never log in.
type EmployeeProfile struct {
	shared.OrgAggregateRoot
	UserID         *uuid.UUID
	EmployeeNumber string
	FirstName      string
	LastName       string
	JobTitle       string
	Status         EmployeeStatus
	HireDate       time.Time
	TerminatedAt   *time.Time
}

// NewEmployeeProfile creates a new active employee profile
func NewEmployeeProfile(orgID uuid.UUID, employeeNumber, firstName, lastName string, hireDate time.Time) (*EmployeeProfile, error) {
	employeeNumber = strings.TrimSpace(employeeNumber)
	if employeeNumber == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_NUMBER", "Employee number cannot be empty")
	}
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_NAME", "First and last name are required")
	}

	return &EmployeeProfile{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		EmployeeNumber:   employeeNumber,
		FirstName:        firstName,
		LastName:         lastName,
		Status:           EmployeeStatusActive,
		HireDate:         hireDate,
	}, nil
}

// FullName returns the employee's display name
func (e *EmployeeProfile) FullName() string {
	return e.FirstName + " " + e.LastName
}

// SetJobTitle updates the job title
func (e *EmployeeProfile) SetJobTitle(title string) {
	e.JobTitle = strings.TrimSpace(title)
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// ChangeStatus transitions the employment status. A terminated
// employee cannot be reactivated.
func (e *EmployeeProfile) ChangeStatus(status EmployeeStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown employee status")
	}
	if e.Status == EmployeeStatusTerminated {
		return shared.ErrInvalidState
	}
	e.Status = status
	if status == EmployeeStatusTerminated {
		now := time.Now()
		e.TerminatedAt = &now
	}
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// IsActive reports whether the employee is currently employed and active
func (e *EmployeeProfile) IsActive() bool {
	return e.Status == EmployeeStatusActive
}
