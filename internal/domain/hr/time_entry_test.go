package hr

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntryClose(t *testing.T) {
	orgID := uuid.New()
	employeeID := uuid.New()
	clockIn := time.Date(2025, time.June, 2, 7, 0, 0, 0, time.UTC)

	t.Run("derives hours net of breaks", func(t *testing.T) {
		entry := NewTimeEntry(orgID, employeeID, clockIn)
		require.NoError(t, entry.SetBreakMinutes(30))
		require.NoError(t, entry.Close(clockIn.Add(9*time.Hour)))

		assert.False(t, entry.IsOpen())
		require.NotNil(t, entry.TotalHours)
		assert.Equal(t, "8.50", entry.TotalHours.StringFixed(2))
	})

	t.Run("rejects clock-out before clock-in", func(t *testing.T) {
		entry := NewTimeEntry(orgID, employeeID, clockIn)
		assert.Error(t, entry.Close(clockIn.Add(-time.Hour)))
		assert.True(t, entry.IsOpen())
	})

	t.Run("rejects breaks longer than the shift", func(t *testing.T) {
		entry := NewTimeEntry(orgID, employeeID, clockIn)
		require.NoError(t, entry.SetBreakMinutes(120))
		assert.Error(t, entry.Close(clockIn.Add(time.Hour)))
	})

	t.Run("cannot close twice", func(t *testing.T) {
		entry := NewTimeEntry(orgID, employeeID, clockIn)
		require.NoError(t, entry.Close(clockIn.Add(8*time.Hour)))
		assert.Error(t, entry.Close(clockIn.Add(9*time.Hour)))
	})

	t.Run("manual entry is created closed", func(t *testing.T) {
		entry, err := NewClosedTimeEntry(orgID, employeeID, clockIn, clockIn.Add(10*time.Hour), 60)
		require.NoError(t, err)
		require.NotNil(t, entry.TotalHours)
		assert.Equal(t, "9.00", entry.TotalHours.StringFixed(2))
	})
}

func TestCompensationRecord(t *testing.T) {
	orgID := uuid.New()
	employeeID := uuid.New()
	effective := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("overtime defaults to time and a half", func(t *testing.T) {
		record, err := NewCompensationRecord(orgID, employeeID, PayTypeHourly, effective)
		require.NoError(t, err)
		require.NoError(t, record.SetHourlyRates(decimal.NewFromInt(20), decimal.Zero))
		assert.Equal(t, "30.00", record.OvertimeRate.StringFixed(2))
		assert.Equal(t, "30.00", record.EffectiveOvertimeRate().StringFixed(2))
	})

	t.Run("explicit overtime rate is kept", func(t *testing.T) {
		record, err := NewCompensationRecord(orgID, employeeID, PayTypeHourly, effective)
		require.NoError(t, err)
		require.NoError(t, record.SetHourlyRates(decimal.NewFromInt(20), decimal.NewFromInt(35)))
		assert.Equal(t, "35.00", record.EffectiveOvertimeRate().StringFixed(2))
	})

	t.Run("rejects unknown pay type", func(t *testing.T) {
		_, err := NewCompensationRecord(orgID, employeeID, PayType("commission"), effective)
		assert.Error(t, err)
	})

	t.Run("close demotes the record", func(t *testing.T) {
		record, err := NewCompensationRecord(orgID, employeeID, PayTypeSalary, effective)
		require.NoError(t, err)
		require.NoError(t, record.SetSalary(decimal.NewFromInt(52000)))

		end := effective.AddDate(0, 6, 0)
		require.NoError(t, record.Close(end))
		assert.False(t, record.IsCurrent)
		require.NotNil(t, record.EndDate)
		assert.Error(t, record.Close(end))
	})

	t.Run("end date cannot precede effective date", func(t *testing.T) {
		record, err := NewCompensationRecord(orgID, employeeID, PayTypeSalary, effective)
		require.NoError(t, err)
		assert.Error(t, record.Close(effective.AddDate(0, 0, -1)))
	})
}

func TestEmployeeStatus(t *testing.T) {
	orgID := uuid.New()
	hired := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("termination is final", func(t *testing.T) {
		emp, err := NewEmployeeProfile(orgID, "E-100", "Dana", "Reyes", hired)
		require.NoError(t, err)
		require.NoError(t, emp.ChangeStatus(EmployeeStatusTerminated))
		assert.NotNil(t, emp.TerminatedAt)
		assert.Error(t, emp.ChangeStatus(EmployeeStatusActive))
	})

	t.Run("requires names and number", func(t *testing.T) {
		_, err := NewEmployeeProfile(orgID, "", "Dana", "Reyes", hired)
		assert.Error(t, err)
		_, err = NewEmployeeProfile(orgID, "E-100", "", "Reyes", hired)
		assert.Error(t, err)
	})
}
