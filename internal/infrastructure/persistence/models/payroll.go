package models

import (
	"time"

	"github.com/fiberops/backend/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayPeriodModel is the persistence model for pay periods
type PayPeriodModel struct {
	OrgAggregateModel
	StartDate  time.Time `gorm:"not null;index"`
	EndDate    time.Time `gorm:"not null"`
	PayDate    time.Time `gorm:"not null"`
	PeriodType string    `gorm:"type:varchar(20);not null"`
	IsClosed   bool      `gorm:"not null;default:false"`
}

// TableName returns the table name
func (PayPeriodModel) TableName() string {
	return "pay_periods"
}

// ToDomain converts the model to a domain pay period
func (m *PayPeriodModel) ToDomain() *payroll.PayPeriod {
	period := &payroll.PayPeriod{
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		PayDate:    m.PayDate,
		PeriodType: payroll.PeriodType(m.PeriodType),
		IsClosed:   m.IsClosed,
	}
	m.PopulateOrgAggregateRoot(&period.OrgAggregateRoot)
	return period
}

// FromDomain populates the model from a domain pay period
func (m *PayPeriodModel) FromDomain(period *payroll.PayPeriod) {
	m.FromDomainOrgAggregateRoot(period.OrgAggregateRoot)
	m.StartDate = period.StartDate
	m.EndDate = period.EndDate
	m.PayDate = period.PayDate
	m.PeriodType = period.PeriodType.String()
	m.IsClosed = period.IsClosed
}

// PayRunModel is the persistence model for pay runs
type PayRunModel struct {
	OrgAggregateModel
	PayPeriodID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	RunNumber       string          `gorm:"type:varchar(50);not null"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	TotalGross      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalTaxes      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalNet        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	EmployeeCount   int             `gorm:"not null;default:0"`
	ProcessedBy     *uuid.UUID      `gorm:"type:uuid"`
	ProcessedAt     *time.Time
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	Notes           string `gorm:"type:varchar(1000)"`
}

// TableName returns the table name
func (PayRunModel) TableName() string {
	return "pay_runs"
}

// ToDomain converts the model to a domain pay run
func (m *PayRunModel) ToDomain() *payroll.PayRun {
	run := &payroll.PayRun{
		PayPeriodID:     m.PayPeriodID,
		RunNumber:       m.RunNumber,
		Status:          payroll.PayRunStatus(m.Status),
		TotalGross:      m.TotalGross,
		TotalDeductions: m.TotalDeductions,
		TotalTaxes:      m.TotalTaxes,
		TotalNet:        m.TotalNet,
		EmployeeCount:   m.EmployeeCount,
		ProcessedBy:     m.ProcessedBy,
		ProcessedAt:     m.ProcessedAt,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		Notes:           m.Notes,
	}
	m.PopulateOrgAggregateRoot(&run.OrgAggregateRoot)
	return run
}

// FromDomain populates the model from a domain pay run
func (m *PayRunModel) FromDomain(run *payroll.PayRun) {
	m.FromDomainOrgAggregateRoot(run.OrgAggregateRoot)
	m.PayPeriodID = run.PayPeriodID
	m.RunNumber = run.RunNumber
	m.Status = run.Status.String()
	m.TotalGross = run.TotalGross
	m.TotalDeductions = run.TotalDeductions
	m.TotalTaxes = run.TotalTaxes
	m.TotalNet = run.TotalNet
	m.EmployeeCount = run.EmployeeCount
	m.ProcessedBy = run.ProcessedBy
	m.ProcessedAt = run.ProcessedAt
	m.ApprovedBy = run.ApprovedBy
	m.ApprovedAt = run.ApprovedAt
	m.Notes = run.Notes
}

// PayStubModel is the persistence model for pay stubs. The composite
// unique index guarantees one stub per (run, employee).
type PayStubModel struct {
	OrgAggregateModel
	PayRunID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_pay_stub_run_employee,priority:1"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_pay_stub_run_employee,priority:2;index"`
	RegularHours    decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	OvertimeHours   decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	RegularPay      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	OvertimePay     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PerDiem         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GrossPay        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalTaxes      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	NetPay          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	YTDGross        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	YTDTaxes        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	YTDNet          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
}

// TableName returns the table name
func (PayStubModel) TableName() string {
	return "pay_stubs"
}

// ToDomain converts the model to a domain pay stub
func (m *PayStubModel) ToDomain() *payroll.PayStub {
	stub := &payroll.PayStub{
		PayRunID:        m.PayRunID,
		EmployeeID:      m.EmployeeID,
		RegularHours:    m.RegularHours,
		OvertimeHours:   m.OvertimeHours,
		RegularPay:      m.RegularPay,
		OvertimePay:     m.OvertimePay,
		PerDiem:         m.PerDiem,
		GrossPay:        m.GrossPay,
		TotalDeductions: m.TotalDeductions,
		TotalTaxes:      m.TotalTaxes,
		NetPay:          m.NetPay,
		YTDGross:        m.YTDGross,
		YTDTaxes:        m.YTDTaxes,
		YTDNet:          m.YTDNet,
	}
	m.PopulateOrgAggregateRoot(&stub.OrgAggregateRoot)
	return stub
}

// FromDomain populates the model from a domain pay stub
func (m *PayStubModel) FromDomain(stub *payroll.PayStub) {
	m.FromDomainOrgAggregateRoot(stub.OrgAggregateRoot)
	m.PayRunID = stub.PayRunID
	m.EmployeeID = stub.EmployeeID
	m.RegularHours = stub.RegularHours
	m.OvertimeHours = stub.OvertimeHours
	m.RegularPay = stub.RegularPay
	m.OvertimePay = stub.OvertimePay
	m.PerDiem = stub.PerDiem
	m.GrossPay = stub.GrossPay
	m.TotalDeductions = stub.TotalDeductions
	m.TotalTaxes = stub.TotalTaxes
	m.NetPay = stub.NetPay
	m.YTDGross = stub.YTDGross
	m.YTDTaxes = stub.YTDTaxes
	m.YTDNet = stub.YTDNet
}

// TaxWithholdingModel is the persistence model for withholding rows
type TaxWithholdingModel struct {
	OrgAggregateModel
	PayStubID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TaxType       string          `gorm:"type:varchar(30);not null"`
	Description   string          `gorm:"type:varchar(200)"`
	TaxableAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Rate          decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name
func (TaxWithholdingModel) TableName() string {
	return "tax_withholdings"
}

// ToDomain converts the model to a domain withholding
func (m *TaxWithholdingModel) ToDomain() *payroll.TaxWithholding {
	withholding := &payroll.TaxWithholding{
		PayStubID:     m.PayStubID,
		TaxType:       payroll.TaxType(m.TaxType),
		Description:   m.Description,
		TaxableAmount: m.TaxableAmount,
		Rate:          m.Rate,
		Amount:        m.Amount,
	}
	m.PopulateOrgAggregateRoot(&withholding.OrgAggregateRoot)
	return withholding
}

// FromDomain populates the model from a domain withholding
func (m *TaxWithholdingModel) FromDomain(withholding *payroll.TaxWithholding) {
	m.FromDomainOrgAggregateRoot(withholding.OrgAggregateRoot)
	m.PayStubID = withholding.PayStubID
	m.TaxType = withholding.TaxType.String()
	m.Description = withholding.Description
	m.TaxableAmount = withholding.TaxableAmount
	m.Rate = withholding.Rate
	m.Amount = withholding.Amount
}

// PayDeductionModel is the persistence model for deduction rows
type PayDeductionModel struct {
	OrgAggregateModel
	PayStubID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeductionType string          `gorm:"type:varchar(30);not null"`
	Description   string          `gorm:"type:varchar(200)"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IsPretax      bool            `gorm:"not null;default:false"`
}

// TableName returns the table name
func (PayDeductionModel) TableName() string {
	return "pay_deductions"
}

// ToDomain converts the model to a domain deduction
func (m *PayDeductionModel) ToDomain() *payroll.PayDeduction {
	deduction := &payroll.PayDeduction{
		PayStubID:     m.PayStubID,
		DeductionType: payroll.DeductionType(m.DeductionType),
		Description:   m.Description,
		Amount:        m.Amount,
		IsPretax:      m.IsPretax,
	}
	m.PopulateOrgAggregateRoot(&deduction.OrgAggregateRoot)
	return deduction
}

// FromDomain populates the model from a domain deduction
func (m *PayDeductionModel) FromDomain(deduction *payroll.PayDeduction) {
	m.FromDomainOrgAggregateRoot(deduction.OrgAggregateRoot)
	m.PayStubID = deduction.PayStubID
	m.DeductionType = string(deduction.DeductionType)
	m.Description = deduction.Description
	m.Amount = deduction.Amount
	m.IsPretax = deduction.IsPretax
}
