package hr

import (
	"strings"
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// TimeEntry is one clock-in/clock-out pair for an employee.
// TotalHours stays nil while the entry is open; payroll only counts
// closed entries.
type TimeEntry struct {
	shared.OrgAggregateRoot
	EmployeeID   uuid.UUID
	ClockIn      time.Time
	ClockOut     *time.Time
	BreakMinutes int
	TotalHours   *decimal.Decimal
	Notes        string
}

// NewTimeEntry opens a new entry at the given clock-in time
func NewTimeEntry(orgID, employeeID uuid.UUID, clockIn time.Time) *TimeEntry {
	return &TimeEntry{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		EmployeeID:       employeeID,
		ClockIn:          clockIn,
	}
}

// NewClosedTimeEntry creates a completed entry in one step (manual entry)
func NewClosedTimeEntry(orgID, employeeID uuid.UUID, clockIn, clockOut time.Time, breakMinutes int) (*TimeEntry, error) {
	entry := NewTimeEntry(orgID, employeeID, clockIn)
	entry.BreakMinutes = breakMinutes
	if err := entry.Close(clockOut); err != nil {
		return nil, err
	}
	return entry, nil
}

// IsOpen reports whether the entry has not been clocked out yet
func (t *TimeEntry) IsOpen() bool {
	return t.ClockOut == nil
}

// Close records the clock-out time and derives total hours:
// (clock_out - clock_in) minus break time, rounded to 2 places.
func (t *TimeEntry) Close(clockOut time.Time) error {
	if !t.IsOpen() {
		return shared.ErrInvalidState
	}
	if !clockOut.After(t.ClockIn) {
		return shared.NewDomainError("INVALID_CLOCK_OUT", "Clock-out must be after clock-in")
	}
	worked := decimal.NewFromFloat(clockOut.Sub(t.ClockIn).Hours())
	breaks := decimal.NewFromInt(int64(t.BreakMinutes)).Div(minutesPerHour)
	hours := worked.Sub(breaks).Round(2)
	if hours.IsNegative() {
		return shared.NewDomainError("INVALID_BREAK", "Break time exceeds time worked")
	}
	t.ClockOut = &clockOut
	t.TotalHours = &hours
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// SetBreakMinutes updates break time on an open entry
func (t *TimeEntry) SetBreakMinutes(minutes int) error {
	if minutes < 0 {
		return shared.NewDomainError("INVALID_BREAK", "Break minutes cannot be negative")
	}
	if !t.IsOpen() {
		return shared.ErrInvalidState
	}
	t.BreakMinutes = minutes
	return nil
}

// SetNotes sets free-form notes on the entry
func (t *TimeEntry) SetNotes(notes string) {
	t.Notes = strings.TrimSpace(notes)
	t.UpdatedAt = time.Now()
}

// ISOWeek returns the ISO year and week of the clock-in time, the
// grouping key for weekly overtime.
func (t *TimeEntry) ISOWeek() (int, int) {
	return t.ClockIn.ISOWeek()
}
