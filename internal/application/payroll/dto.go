package payroll

import (
	"time"

	apphr "github.com/fiberops/backend/internal/application/hr"
	"github.com/fiberops/backend/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePayPeriodInput contains input for creating a pay period
type CreatePayPeriodInput struct {
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	PayDate    time.Time `json:"pay_date" binding:"required"`
	PeriodType string    `json:"period_type" binding:"required,oneof=weekly biweekly semimonthly monthly"`
}

// UpdatePayPeriodInput contains input for updating a pay period
type UpdatePayPeriodInput struct {
	PayDate  *time.Time `json:"pay_date"`
	IsClosed *bool      `json:"is_closed"`
}

// ListPayPeriodsInput contains filters for listing pay periods
type ListPayPeriodsInput struct {
	PeriodType string `form:"period_type" binding:"omitempty,oneof=weekly biweekly semimonthly monthly"`
	IsClosed   *bool  `form:"is_closed"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// PayPeriodResult is the pay period payload returned to callers
type PayPeriodResult struct {
	ID         uuid.UUID `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PayDate    time.Time `json:"pay_date"`
	PeriodType string    `json:"period_type"`
	IsClosed   bool      `json:"is_closed"`
}

// PayPeriodListResult is a paginated pay period list
type PayPeriodListResult struct {
	Items    []PayPeriodResult `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CreatePayRunInput contains input for creating a pay run
type CreatePayRunInput struct {
	PayPeriodID uuid.UUID `json:"pay_period_id" binding:"required"`
	Notes       string    `json:"notes" binding:"max=1000"`
}

// ListPayRunsInput contains filters for listing pay runs
type ListPayRunsInput struct {
	PayPeriodID *uuid.UUID `form:"pay_period_id"`
	Status      string     `form:"status" binding:"omitempty,oneof=draft processing approved"`
	Page        int        `form:"page"`
	PageSize    int        `form:"page_size"`
}

// PayRunResult is the pay run payload returned to callers
type PayRunResult struct {
	ID              uuid.UUID       `json:"id"`
	PayPeriodID     uuid.UUID       `json:"pay_period_id"`
	RunNumber       string          `json:"run_number"`
	Status          string          `json:"status"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalTaxes      decimal.Decimal `json:"total_taxes"`
	TotalNet        decimal.Decimal `json:"total_net"`
	EmployeeCount   int             `json:"employee_count"`
	ProcessedBy     *uuid.UUID      `json:"processed_by,omitempty"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
	ApprovedBy      *uuid.UUID      `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	Stubs           []PayStubResult `json:"stubs,omitempty"`
}

// PayRunListResult is a paginated pay run list
type PayRunListResult struct {
	Items    []PayRunResult `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ListPayStubsInput contains filters for listing pay stubs
type ListPayStubsInput struct {
	PayRunID   *uuid.UUID `form:"pay_run_id"`
	EmployeeID *uuid.UUID `form:"employee_id"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
}

// WithholdingResult is one tax line on a stub
type WithholdingResult struct {
	TaxType       string          `json:"tax_type"`
	Description   string          `json:"description"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
}

// DeductionResult is one deduction line on a stub
type DeductionResult struct {
	DeductionType string          `json:"deduction_type"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	IsPretax      bool            `json:"is_pretax"`
}

// PayStubResult is the stub payload returned to callers
type PayStubResult struct {
	ID              uuid.UUID           `json:"id"`
	PayRunID        uuid.UUID           `json:"pay_run_id"`
	EmployeeID      uuid.UUID           `json:"employee_id"`
	RegularHours    decimal.Decimal     `json:"regular_hours"`
	OvertimeHours   decimal.Decimal     `json:"overtime_hours"`
	RegularPay      decimal.Decimal     `json:"regular_pay"`
	OvertimePay     decimal.Decimal     `json:"overtime_pay"`
	PerDiem         decimal.Decimal     `json:"per_diem"`
	GrossPay        decimal.Decimal     `json:"gross_pay"`
	TotalDeductions decimal.Decimal     `json:"total_deductions"`
	TotalTaxes      decimal.Decimal     `json:"total_taxes"`
	NetPay          decimal.Decimal     `json:"net_pay"`
	YTDGross        decimal.Decimal     `json:"ytd_gross"`
	YTDTaxes        decimal.Decimal     `json:"ytd_taxes"`
	YTDNet          decimal.Decimal     `json:"ytd_net"`
	Withholdings    []WithholdingResult `json:"withholdings,omitempty"`
	Deductions      []DeductionResult   `json:"deductions,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// PayStubListResult is a paginated stub list
type PayStubListResult struct {
	Items    []PayStubResult `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// EmployeeHistoryResult is one employee's stubs and pay terms
type EmployeeHistoryResult struct {
	Employee     apphr.EmployeeResult       `json:"employee"`
	Stubs        []PayStubResult            `json:"stubs"`
	Compensation []apphr.CompensationResult `json:"compensation"`
}

// StatsResult is the payroll dashboard summary
type StatsResult struct {
	ActiveEmployees int64            `json:"active_employees"`
	CurrentPeriod   *PayPeriodResult `json:"current_period,omitempty"`
	YTDGross        decimal.Decimal  `json:"ytd_gross"`
	YTDTaxes        decimal.Decimal  `json:"ytd_taxes"`
	YTDNet          decimal.Decimal  `json:"ytd_net"`
	PendingRuns     int64            `json:"pending_runs"`
	RunsThisYear    int64            `json:"runs_this_year"`
}

// CalculateInput contains input for the payroll engine
type CalculateInput struct {
	PayRunID uuid.UUID `json:"pay_run_id" binding:"required"`
}

// EmployeeCalculationResult is one employee's line in a calculation
type EmployeeCalculationResult struct {
	EmployeeID    uuid.UUID       `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	GrossPay      decimal.Decimal `json:"gross_pay"`
	TotalTaxes    decimal.Decimal `json:"total_taxes"`
	NetPay        decimal.Decimal `json:"net_pay"`
}

// CalculateResult is the payroll engine's summary for one run
type CalculateResult struct {
	PayRunID        uuid.UUID                   `json:"pay_run_id"`
	RunNumber       string                      `json:"run_number"`
	EmployeeCount   int                         `json:"employee_count"`
	TotalGross      decimal.Decimal             `json:"total_gross"`
	TotalDeductions decimal.Decimal             `json:"total_deductions"`
	TotalTaxes      decimal.Decimal             `json:"total_taxes"`
	TotalNet        decimal.Decimal             `json:"total_net"`
	Employees       []EmployeeCalculationResult `json:"employees"`
}

func toPayPeriodResult(period *payroll.PayPeriod) PayPeriodResult {
	return PayPeriodResult{
		ID:         period.ID,
		StartDate:  period.StartDate,
		EndDate:    period.EndDate,
		PayDate:    period.PayDate,
		PeriodType: period.PeriodType.String(),
		IsClosed:   period.IsClosed,
	}
}

func toPayRunResult(run *payroll.PayRun) PayRunResult {
	return PayRunResult{
		ID:              run.ID,
		PayPeriodID:     run.PayPeriodID,
		RunNumber:       run.RunNumber,
		Status:          run.Status.String(),
		TotalGross:      run.TotalGross,
		TotalDeductions: run.TotalDeductions,
		TotalTaxes:      run.TotalTaxes,
		TotalNet:        run.TotalNet,
		EmployeeCount:   run.EmployeeCount,
		ProcessedBy:     run.ProcessedBy,
		ProcessedAt:     run.ProcessedAt,
		ApprovedBy:      run.ApprovedBy,
		ApprovedAt:      run.ApprovedAt,
		Notes:           run.Notes,
		CreatedAt:       run.CreatedAt,
	}
}

func toPayStubResult(stub *payroll.PayStub) PayStubResult {
	result := PayStubResult{
		ID:              stub.ID,
		PayRunID:        stub.PayRunID,
		EmployeeID:      stub.EmployeeID,
		RegularHours:    stub.RegularHours,
		OvertimeHours:   stub.OvertimeHours,
		RegularPay:      stub.RegularPay,
		OvertimePay:     stub.OvertimePay,
		PerDiem:         stub.PerDiem,
		GrossPay:        stub.GrossPay,
		TotalDeductions: stub.TotalDeductions,
		TotalTaxes:      stub.TotalTaxes,
		NetPay:          stub.NetPay,
		YTDGross:        stub.YTDGross,
		YTDTaxes:        stub.YTDTaxes,
		YTDNet:          stub.YTDNet,
		CreatedAt:       stub.CreatedAt,
	}
	for _, w := range stub.Withholdings {
		result.Withholdings = append(result.Withholdings, WithholdingResult{
			TaxType:       w.TaxType.String(),
			Description:   w.Description,
			TaxableAmount: w.TaxableAmount,
			Rate:          w.Rate,
			Amount:        w.Amount,
		})
	}
	for _, d := range stub.Deductions {
		result.Deductions = append(result.Deductions, DeductionResult{
			DeductionType: string(d.DeductionType),
			Description:   d.Description,
			Amount:        d.Amount,
			IsPretax:      d.IsPretax,
		})
	}
	return result
}
