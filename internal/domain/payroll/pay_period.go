package payroll

import (
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PeriodType represents the pay frequency of a pay period
type PeriodType string

const (
	PeriodTypeWeekly      PeriodType = "weekly"
	PeriodTypeBiweekly    PeriodType = "biweekly"
	PeriodTypeSemimonthly PeriodType = "semimonthly"
	PeriodTypeMonthly     PeriodType = "monthly"
)

// IsValid returns true for a recognized period type
func (t PeriodType) IsValid() bool {
	switch t {
	case PeriodTypeWeekly, PeriodTypeBiweekly, PeriodTypeSemimonthly, PeriodTypeMonthly:
		return true
	}
	return false
}

// String returns the period type as a string
func (t PeriodType) String() string {
	return string(t)
}

// PeriodsPerYear returns how many pay periods of this type fit in a
// year. Unrecognized types fall back to biweekly.
func (t PeriodType) PeriodsPerYear() int64 {
	switch t {
	case PeriodTypeWeekly:
		return 52
	case PeriodTypeBiweekly:
		return 26
	case PeriodTypeSemimonthly:
		return 24
	case PeriodTypeMonthly:
		return 12
	default:
		return 26
	}
}

// PayPeriod is a date window that pay runs are calculated against
type PayPeriod struct {
	shared.OrgAggregateRoot
	StartDate  time.Time
	EndDate    time.Time
	PayDate    time.Time
	PeriodType PeriodType
	IsClosed   bool
}

// NewPayPeriod creates a new open pay period
func NewPayPeriod(orgID uuid.UUID, periodType PeriodType, startDate, endDate, payDate time.Time) (*PayPeriod, error) {
	if !periodType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PERIOD_TYPE", "Unknown pay period type")
	}
	if endDate.Before(startDate) {
		return nil, shared.NewDomainError("INVALID_PERIOD_DATES", "End date cannot precede start date")
	}
	return &PayPeriod{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		StartDate:        startDate,
		EndDate:          endDate,
		PayDate:          payDate,
		PeriodType:       periodType,
	}, nil
}

// Close marks the period closed so new runs cannot target it
func (p *PayPeriod) Close() error {
	if p.IsClosed {
		return shared.ErrInvalidState
	}
	p.IsClosed = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// YearStart returns midnight on January 1 of the period's start year,
// the lower bound for year-to-date accumulation.
func (p *PayPeriod) YearStart() time.Time {
	return time.Date(p.StartDate.Year(), time.January, 1, 0, 0, 0, 0, p.StartDate.Location())
}
