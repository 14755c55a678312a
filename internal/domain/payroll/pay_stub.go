package payroll

import (
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayStub is the per-employee result of a pay run calculation. Exactly
// one stub exists per (pay run, employee); recalculation replaces it.
type PayStub struct {
	shared.OrgAggregateRoot
	PayRunID        uuid.UUID
	EmployeeID      uuid.UUID
	RegularHours    decimal.Decimal
	OvertimeHours   decimal.Decimal
	RegularPay      decimal.Decimal
	OvertimePay     decimal.Decimal
	PerDiem         decimal.Decimal
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalTaxes      decimal.Decimal
	NetPay          decimal.Decimal
	YTDGross        decimal.Decimal
	YTDTaxes        decimal.Decimal
	YTDNet          decimal.Decimal
	Withholdings    []*TaxWithholding
	Deductions      []*PayDeduction
}

// NewPayStub builds a stub from a calculation result, accumulating the
// year-to-date totals on top of the prior-stub figures.
func NewPayStub(orgID, payRunID, employeeID uuid.UUID, calc EmployeeCalculation, ytd YTDTotals) *PayStub {
	stub := &PayStub{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		PayRunID:         payRunID,
		EmployeeID:       employeeID,
		RegularHours:     calc.RegularHours,
		OvertimeHours:    calc.OvertimeHours,
		RegularPay:       calc.RegularPay,
		OvertimePay:      calc.OvertimePay,
		PerDiem:          calc.PerDiem,
		GrossPay:         calc.GrossPay,
		TotalDeductions:  decimal.Zero,
		TotalTaxes:       calc.TotalTaxes,
		NetPay:           calc.NetPay,
		YTDGross:         ytd.Gross.Add(calc.GrossPay).Round(2),
		YTDTaxes:         ytd.Taxes.Add(calc.TotalTaxes).Round(2),
		YTDNet:           ytd.Net.Add(calc.NetPay).Round(2),
	}
	for _, line := range calc.Taxes {
		stub.Withholdings = append(stub.Withholdings, NewTaxWithholding(orgID, stub.ID, line))
	}
	return stub
}

// YTDTotals carries an employee's year-to-date figures before a period
type YTDTotals struct {
	Gross decimal.Decimal
	Taxes decimal.Decimal
	Net   decimal.Decimal
}

// Accumulate adds one prior stub's figures
func (y YTDTotals) Accumulate(stub *PayStub) YTDTotals {
	return YTDTotals{
		Gross: y.Gross.Add(stub.GrossPay),
		Taxes: y.Taxes.Add(stub.TotalTaxes),
		Net:   y.Net.Add(stub.NetPay),
	}
}
