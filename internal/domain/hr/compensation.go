package hr

import (
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayType represents how an employee is paid
type PayType string

const (
	PayTypeHourly PayType = "hourly"
	PayTypeSalary PayType = "salary"
)

// IsValid returns true for a recognized pay type
func (t PayType) IsValid() bool {
	return t == PayTypeHourly || t == PayTypeSalary
}

// String returns the pay type as a string
func (t PayType) String() string {
	return string(t)
}

// Default overtime premium over the base hourly rate
var defaultOvertimeMultiplier = decimal.NewFromFloat(1.5)

// CompensationRecord captures an employee's pay terms over a date
// range. At most one record per employee is current; starting a new
// one closes out the previous record.
type CompensationRecord struct {
	shared.OrgAggregateRoot
	EmployeeID    uuid.UUID
	PayType       PayType
	HourlyRate    decimal.Decimal
	OvertimeRate  decimal.Decimal
	Salary        decimal.Decimal
	PerDiem       decimal.Decimal
	EffectiveDate time.Time
	EndDate       *time.Time
	IsCurrent     bool
	Reason        string
}

// NewCompensationRecord creates a new current compensation record.
// For hourly pay the overtime rate defaults to 1.5x the hourly rate
// when not provided.
func NewCompensationRecord(orgID, employeeID uuid.UUID, payType PayType, effectiveDate time.Time) (*CompensationRecord, error) {
	if !payType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAY_TYPE", "Pay type must be hourly or salary")
	}
	return &CompensationRecord{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		EmployeeID:       employeeID,
		PayType:          payType,
		EffectiveDate:    effectiveDate,
		IsCurrent:        true,
	}, nil
}

// SetHourlyRates sets the hourly and overtime rates. A zero overtime
// rate is replaced by 1.5x the hourly rate.
func (c *CompensationRecord) SetHourlyRates(hourly, overtime decimal.Decimal) error {
	if hourly.IsNegative() || overtime.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Rates cannot be negative")
	}
	c.HourlyRate = hourly
	if overtime.IsZero() {
		overtime = hourly.Mul(defaultOvertimeMultiplier)
	}
	c.OvertimeRate = overtime
	return nil
}

// SetSalary sets the annual salary
func (c *CompensationRecord) SetSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	c.Salary = salary
	return nil
}

// SetPerDiem sets the per-period stipend
func (c *CompensationRecord) SetPerDiem(perDiem decimal.Decimal) error {
	if perDiem.IsNegative() {
		return shared.NewDomainError("INVALID_PER_DIEM", "Per diem cannot be negative")
	}
	c.PerDiem = perDiem
	return nil
}

// EffectiveOvertimeRate returns the overtime rate, falling back to
// 1.5x the hourly rate when none was recorded.
func (c *CompensationRecord) EffectiveOvertimeRate() decimal.Decimal {
	if c.OvertimeRate.IsPositive() {
		return c.OvertimeRate
	}
	return c.HourlyRate.Mul(defaultOvertimeMultiplier)
}

// Close ends the record as of the given date and clears the current flag
func (c *CompensationRecord) Close(endDate time.Time) error {
	if !c.IsCurrent {
		return shared.ErrInvalidState
	}
	if endDate.Before(c.EffectiveDate) {
		return shared.NewDomainError("INVALID_END_DATE", "End date cannot precede the effective date")
	}
	c.EndDate = &endDate
	c.IsCurrent = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}
